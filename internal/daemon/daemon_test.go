package daemon

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/joaovbs/wab/internal/api"
	"github.com/joaovbs/wab/internal/bus"
	"github.com/joaovbs/wab/internal/config"
	"github.com/joaovbs/wab/internal/domain"
	"github.com/joaovbs/wab/internal/lock"
	"github.com/joaovbs/wab/internal/status"
	"github.com/joaovbs/wab/internal/store"
	"github.com/joaovbs/wab/internal/wa"
	wabv1 "github.com/joaovbs/wab/pb/wabv1"
)

// stubSession satisfies api.SessionManager for server tests that never touch
// the network.
type stubSession struct{}

func (stubSession) Connect() error                { return nil }
func (stubSession) Disconnect()                   {}
func (stubSession) Logout(context.Context) error  { return wa.ErrNotLoggedIn }
func (stubSession) IsConnected() bool             { return false }
func (stubSession) IsLoggedIn() bool              { return false }
func (stubSession) OwnJID() string                { return "" }
func (stubSession) PhoneNumber() string           { return "" }
func (stubSession) StartQRPairing(context.Context) (<-chan wa.PairingEvent, error) {
	return nil, wa.ErrNotConnected
}
func (stubSession) PairWithCode(context.Context, string) (string, error) {
	return "", wa.ErrNotConnected
}
func (stubSession) SendText(context.Context, string, string) (*domain.Message, error) {
	return nil, wa.ErrNotConnected
}
func (stubSession) SendMedia(context.Context, string, []byte, string, string, string) (*domain.Message, error) {
	return nil, wa.ErrNotConnected
}
func (stubSession) SendReaction(context.Context, string, string, string, string) (*domain.Message, error) {
	return nil, wa.ErrNotConnected
}
func (stubSession) MarkRead(context.Context, string, string, []string) error {
	return wa.ErrNotConnected
}

func newTestServer(t *testing.T, socketPath string, db *store.DB) *Server {
	t.Helper()
	logger := zap.NewNop()
	b := bus.New(nil)
	machine := status.NewMachine()
	sess := stubSession{}

	srv, err := NewServer(
		Params{SessionName: "test", SocketPath: socketPath},
		&config.Config{},
		logger,
		api.NewSessionService(sess, machine, logger),
		api.NewChatService(db),
		api.NewMessageService(sess, db, b, logger),
		api.NewEventService(b),
	)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func TestDaemonServesOverUnixSocket(t *testing.T) {
	// Short path keeps the socket under the 104-char Unix limit.
	tmpDir, err := os.MkdirTemp("/tmp", "wab-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	sessionDir := filepath.Join(tmpDir, "s")
	socketPath := filepath.Join(sessionDir, "d.sock")
	if err := os.MkdirAll(sessionDir, 0700); err != nil {
		t.Fatal(err)
	}

	lk, err := lock.Acquire(sessionDir)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = lk.Release() }()

	db, err := store.Open(filepath.Join(sessionDir, "wab.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}

	srv := newTestServer(t, socketPath, db)
	go func() { _ = srv.Start() }()
	defer srv.Stop(context.Background())

	time.Sleep(50 * time.Millisecond)

	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = conn.Close() }()

	ctx := context.Background()

	statusResp, err := wabv1.NewSessionServiceClient(conn).GetConnectionStatus(ctx, &wabv1.GetConnectionStatusRequest{})
	if err != nil {
		t.Fatalf("GetConnectionStatus: %v", err)
	}
	if statusResp.GetState() != string(status.Booting) {
		t.Errorf("state = %q, want %q", statusResp.GetState(), status.Booting)
	}
	if statusResp.GetLoggedIn() {
		t.Error("expected logged_in = false")
	}

	chatClient := wabv1.NewChatServiceClient(conn)
	chatResp, err := chatClient.ListChats(ctx, &wabv1.ListChatsRequest{})
	if err != nil {
		t.Fatalf("ListChats: %v", err)
	}
	if len(chatResp.GetChats()) != 0 {
		t.Errorf("expected 0 chats, got %d", len(chatResp.GetChats()))
	}

	// Seed the mirror and query it back through the RPC surface.
	if err := db.EnsureChat("friend@s.whatsapp.net", domain.ChatPrivate, "Friend"); err != nil {
		t.Fatal(err)
	}
	if err := db.CreateMessage(&domain.Message{
		ChatJID:   "friend@s.whatsapp.net",
		MsgID:     "M1",
		SenderJID: "friend@s.whatsapp.net",
		Type:      domain.MessageText,
		Text:      "hello world",
		Timestamp: 1000,
	}); err != nil {
		t.Fatal(err)
	}

	chatResp, err = chatClient.ListChats(ctx, &wabv1.ListChatsRequest{})
	if err != nil {
		t.Fatalf("ListChats: %v", err)
	}
	if len(chatResp.GetChats()) != 1 || chatResp.GetTotalCount() != 1 {
		t.Errorf("chats = %d total = %d, want 1/1", len(chatResp.GetChats()), chatResp.GetTotalCount())
	}

	msgClient := wabv1.NewMessageServiceClient(conn)
	msgResp, err := msgClient.ListMessages(ctx, &wabv1.ListMessagesRequest{ChatJid: "friend@s.whatsapp.net"})
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgResp.GetMessages()) != 1 {
		t.Errorf("expected 1 message, got %d", len(msgResp.GetMessages()))
	}

	searchResp, err := msgClient.SearchMessages(ctx, &wabv1.SearchMessagesRequest{Query: "hello"})
	if err != nil {
		t.Fatalf("SearchMessages: %v", err)
	}
	if len(searchResp.GetResults()) != 1 {
		t.Errorf("expected 1 search result, got %d", len(searchResp.GetResults()))
	}

	// The stub has no credential, so sends are refused, not transport errors.
	sendResp, err := msgClient.SendMessage(ctx, &wabv1.SendMessageRequest{
		ChatJid: "friend@s.whatsapp.net", Text: "hi",
	})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if sendResp.GetSuccess() || sendResp.GetErrorMessage() == "" {
		t.Errorf("send while logged out = %+v, want refusal", sendResp)
	}
}

func TestServerRemovesStaleSocket(t *testing.T) {
	tmpDir, err := os.MkdirTemp("/tmp", "wab-stale-*")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()
	socketPath := filepath.Join(tmpDir, "d.sock")

	// Leave a dead socket behind, as a crashed daemon would.
	lis, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatal(err)
	}
	_ = lis.Close()
	if err := os.WriteFile(socketPath, nil, 0600); err != nil {
		t.Fatal(err)
	}

	db, err := store.Open(filepath.Join(tmpDir, "wab.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}

	srv := newTestServer(t, socketPath, db)
	defer srv.Stop(context.Background())

	info, err := os.Stat(socketPath)
	if err != nil {
		t.Fatalf("socket not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("socket permissions = %o, want 0600", perm)
	}
}
