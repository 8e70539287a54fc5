package daemon

import (
	"context"
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/joaovbs/wab/internal/api"
	"github.com/joaovbs/wab/internal/config"
	"github.com/joaovbs/wab/internal/session"
	wabv1 "github.com/joaovbs/wab/pb/wabv1"
)

// Server manages the gRPC server lifecycle for a session daemon. RPC is
// always served on the session's Unix domain socket; an extra TCP listener
// can be enabled through the config file.
type Server struct {
	grpcServer *grpc.Server
	unixLis    net.Listener
	tcpLis     net.Listener
	socketPath string
	logger     *zap.Logger
}

// NewServer creates a gRPC server bound to the session's Unix domain socket.
func NewServer(
	p Params,
	cfg *config.Config,
	logger *zap.Logger,
	sessionSvc *api.SessionService,
	chatSvc *api.ChatService,
	messageSvc *api.MessageService,
	eventSvc *api.EventService,
) (*Server, error) {
	socketPath := p.SocketPath
	if socketPath == "" {
		socketPath = session.SocketPath(p.SessionName)
	}
	listenAddr := p.Listen
	if listenAddr == "" {
		listenAddr = cfg.Listen
	}

	// A stale socket from a crashed daemon would block the bind. The flock
	// already guarantees no live daemon owns it.
	if _, err := os.Stat(socketPath); err == nil {
		_ = os.Remove(socketPath)
	}

	unixLis, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen unix socket: %w", err)
	}
	if err := os.Chmod(socketPath, 0600); err != nil {
		_ = unixLis.Close()
		return nil, fmt.Errorf("chmod socket: %w", err)
	}

	var tcpLis net.Listener
	if listenAddr != "" {
		tcpLis, err = net.Listen("tcp", listenAddr)
		if err != nil {
			_ = unixLis.Close()
			return nil, fmt.Errorf("listen tcp %s: %w", listenAddr, err)
		}
	}

	srv := grpc.NewServer()
	wabv1.RegisterSessionServiceServer(srv, sessionSvc)
	wabv1.RegisterChatServiceServer(srv, chatSvc)
	wabv1.RegisterMessageServiceServer(srv, messageSvc)
	wabv1.RegisterEventServiceServer(srv, eventSvc)

	return &Server{
		grpcServer: srv,
		unixLis:    unixLis,
		tcpLis:     tcpLis,
		socketPath: socketPath,
		logger:     logger,
	}, nil
}

// Start begins serving gRPC requests. Blocks until stopped.
func (s *Server) Start() error {
	if s.tcpLis != nil {
		s.logger.Info("gRPC server listening on TCP", zap.String("addr", s.tcpLis.Addr().String()))
		go func() {
			if err := s.grpcServer.Serve(s.tcpLis); err != nil {
				s.logger.Error("tcp listener error", zap.Error(err))
			}
		}()
	}
	s.logger.Info("gRPC server starting", zap.String("socket", s.socketPath))
	return s.grpcServer.Serve(s.unixLis)
}

// Stop performs a graceful shutdown and removes the socket file.
func (s *Server) Stop(_ context.Context) {
	s.logger.Info("gRPC server stopping")
	s.grpcServer.GracefulStop()
	_ = os.Remove(s.socketPath)
}
