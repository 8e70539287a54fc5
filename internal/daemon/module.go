// Package daemon composes the session daemon: store, WhatsApp session, event
// pipeline, and the gRPC surface, wired together with fx.
package daemon

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/joaovbs/wab/internal/api"
	"github.com/joaovbs/wab/internal/bus"
	"github.com/joaovbs/wab/internal/config"
	"github.com/joaovbs/wab/internal/lock"
	"github.com/joaovbs/wab/internal/logging"
	"github.com/joaovbs/wab/internal/session"
	"github.com/joaovbs/wab/internal/status"
	"github.com/joaovbs/wab/internal/store"
	"github.com/joaovbs/wab/internal/wa"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string // optional override for testing; empty = use default
	Listen      string // optional extra TCP listen address; empty = unix only
}

// Module returns the fx module for the daemon, composing all providers and
// lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideSession,
			provideHandler,
			provideSessionService,
			provideChatService,
			provideMessageService,
			provideEventService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig() *config.Config {
	cfg, err := config.Load(session.ConfigPath())
	if err != nil {
		// Missing config is the common case; everything has a default.
		return &config.Config{}
	}
	return cfg
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName, cfg.LogLevel)
}

func provideBus(logger *zap.Logger) *bus.Bus {
	return bus.New(logger)
}

func provideStateMachine() *status.Machine {
	return status.NewMachine()
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

func provideStore(p Params, logger *zap.Logger) (*store.DB, error) {
	dbPath := session.AppDBPath(p.SessionName)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideSession(p Params, machine *status.Machine, logger *zap.Logger) (*wa.Session, error) {
	return wa.NewSession(context.Background(), p.SessionName, machine, logger)
}

func provideHandler(sess *wa.Session, db *store.DB, b *bus.Bus, machine *status.Machine, logger *zap.Logger) *wa.Handler {
	return wa.NewHandler(sess, db, b, machine, logger)
}

func provideSessionService(sess *wa.Session, machine *status.Machine, logger *zap.Logger) *api.SessionService {
	return api.NewSessionService(sess, machine, logger)
}

func provideChatService(db *store.DB) *api.ChatService {
	return api.NewChatService(db)
}

func provideMessageService(sess *wa.Session, db *store.DB, b *bus.Bus, logger *zap.Logger) *api.MessageService {
	return api.NewMessageService(sess, db, b, logger)
}

func provideEventService(b *bus.Bus) *api.EventService {
	return api.NewEventService(b)
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, lk *lock.Lock, sess *wa.Session, handler *wa.Handler, machine *status.Machine, db *store.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Start the event consumer before the provider can deliver.
			handler.Start(context.Background())
			sess.RegisterEventHandler(handler.Enqueue)

			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			if sess.IsLoggedIn() {
				go func() {
					if err := sess.Connect(); err != nil {
						logger.Error("auto-connect failed", zap.Error(err))
						_ = machine.Transition(status.Disconnected)
					}
				}()
			} else {
				logger.Info("no credentials found, auth required")
				_ = machine.Transition(status.AuthRequired)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sess.Disconnect()
			handler.Stop()
			srv.Stop(ctx)
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}
