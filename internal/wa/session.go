// Package wa owns the whatsmeow session: connection lifecycle, pairing,
// outbound sends, and normalization of inbound events into domain entities.
package wa

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joaovbs/wab/internal/domain"
	"github.com/joaovbs/wab/internal/session"
	"github.com/joaovbs/wab/internal/status"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	wastore "go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	_ "github.com/mattn/go-sqlite3"
)

// Session wraps the whatsmeow client and manages the WhatsApp connection.
// The transport handle and the connected flag are guarded by a single mutex;
// the inbound event handler only touches them through setConnected, so it can
// never deadlock against a concurrent Connect or Logout.
type Session struct {
	client    *whatsmeow.Client
	container *sqlstore.Container
	machine   *status.Machine
	logger    *zap.Logger
	name      string

	mu        sync.Mutex
	connected bool
}

// NewSession creates a session manager backed by the whatsmeow credential
// store for the given session name.
func NewSession(ctx context.Context, sessionName string, machine *status.Machine, logger *zap.Logger) (*Session, error) {
	// Device name shown on the phone's linked devices list.
	wastore.SetOSInfo("WAB", [3]uint32{0, 1, 0})

	dbPath := session.SessionDBPath(sessionName)
	container, err := sqlstore.New(ctx, "sqlite3",
		fmt.Sprintf("file:%s?_foreign_keys=on", dbPath),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create credential store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("get device store: %w", err)
	}

	return &Session{
		client:    whatsmeow.NewClient(deviceStore, nil),
		container: container,
		machine:   machine,
		logger:    logger,
		name:      sessionName,
	}, nil
}

// Connect establishes the transport connection. Idempotent: connecting while
// already connected is a no-op.
func (s *Session) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connected || s.client.IsConnected() {
		return nil
	}
	_ = s.machine.Transition(status.Connecting)
	s.logger.Info("connecting to WhatsApp")
	if err := s.client.Connect(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return nil
}

// Disconnect tears down the transport connection. The stored device
// credential is kept, so a later Connect resumes the same linked device.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Info("disconnecting from WhatsApp")
	s.client.Disconnect()
	s.connected = false
	_ = s.machine.Transition(status.Disconnected)
}

// Logout requests network-side credential revocation, disconnects, and clears
// the local credential. Previously synced chats and messages stay queryable.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client.Store.ID == nil {
		return ErrNotLoggedIn
	}
	if !s.client.IsConnected() {
		return ErrNotConnected
	}
	if err := s.client.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.connected = false
	_ = s.machine.Transition(status.LoggedOut)
	s.logger.Info("logged out, credential cleared")
	return nil
}

// IsConnected reports whether a live socket is up.
func (s *Session) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// IsLoggedIn reports whether a device credential is stored. Independent of
// IsConnected: a device may be logged in but currently disconnected.
func (s *Session) IsLoggedIn() bool {
	return s.client.Store.ID != nil
}

// OwnJID returns the primary address of this linked device, or "".
func (s *Session) OwnJID() string {
	if s.client.Store.ID == nil {
		return ""
	}
	return s.client.Store.ID.ToNonAD().String()
}

// PhoneNumber returns the phone number from the device store, or "".
func (s *Session) PhoneNumber() string {
	if s.client.Store.ID == nil {
		return ""
	}
	return s.client.Store.ID.User
}

// RegisterEventHandler adds a handler for raw whatsmeow events.
func (s *Session) RegisterEventHandler(handler whatsmeow.EventHandler) {
	s.client.AddEventHandler(handler)
}

// setConnected is the event handler's hook for connection transitions.
func (s *Session) setConnected(connected bool) {
	s.mu.Lock()
	s.connected = connected
	s.mu.Unlock()
}

// SendText sends a text message and returns the locally built domain message
// reflecting what the server accepted.
func (s *Session) SendText(ctx context.Context, chatJID, text string) (*domain.Message, error) {
	to, err := types.ParseJID(chatJID)
	if err != nil {
		return nil, fmt.Errorf("parse JID: %w", err)
	}
	if !s.IsConnected() {
		return nil, ErrNotConnected
	}
	resp, err := s.client.SendMessage(ctx, to, &waE2E.Message{
		Conversation: proto.String(text),
	})
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	return &domain.Message{
		ChatJID:   to.ToNonAD().String(),
		MsgID:     resp.ID,
		SenderJID: s.OwnJID(),
		Type:      domain.MessageText,
		Text:      text,
		FromMe:    true,
		Read:      true,
		Timestamp: resp.Timestamp.UnixMilli(),
	}, nil
}

// SendMedia uploads the payload and sends it as the wire variant matching its
// MIME type (image/video/audio, anything else as a document).
func (s *Session) SendMedia(ctx context.Context, chatJID string, data []byte, mimeType, fileName, caption string) (*domain.Message, error) {
	to, err := types.ParseJID(chatJID)
	if err != nil {
		return nil, fmt.Errorf("parse JID: %w", err)
	}
	if !s.IsConnected() {
		return nil, ErrNotConnected
	}

	msgType, mediaType := mediaTypeFor(mimeType)
	upload, err := s.client.Upload(ctx, data, mediaType)
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}

	var msg waE2E.Message
	switch msgType {
	case domain.MessageImage:
		msg.ImageMessage = &waE2E.ImageMessage{
			Caption:       proto.String(caption),
			Mimetype:      proto.String(mimeType),
			URL:           proto.String(upload.URL),
			DirectPath:    proto.String(upload.DirectPath),
			MediaKey:      upload.MediaKey,
			FileEncSHA256: upload.FileEncSHA256,
			FileSHA256:    upload.FileSHA256,
			FileLength:    proto.Uint64(upload.FileLength),
		}
	case domain.MessageVideo:
		msg.VideoMessage = &waE2E.VideoMessage{
			Caption:       proto.String(caption),
			Mimetype:      proto.String(mimeType),
			URL:           proto.String(upload.URL),
			DirectPath:    proto.String(upload.DirectPath),
			MediaKey:      upload.MediaKey,
			FileEncSHA256: upload.FileEncSHA256,
			FileSHA256:    upload.FileSHA256,
			FileLength:    proto.Uint64(upload.FileLength),
		}
	case domain.MessageAudio:
		msg.AudioMessage = &waE2E.AudioMessage{
			Mimetype:      proto.String(mimeType),
			URL:           proto.String(upload.URL),
			DirectPath:    proto.String(upload.DirectPath),
			MediaKey:      upload.MediaKey,
			FileEncSHA256: upload.FileEncSHA256,
			FileSHA256:    upload.FileSHA256,
			FileLength:    proto.Uint64(upload.FileLength),
		}
	default:
		msg.DocumentMessage = &waE2E.DocumentMessage{
			Caption:       proto.String(caption),
			FileName:      proto.String(fileName),
			Mimetype:      proto.String(mimeType),
			URL:           proto.String(upload.URL),
			DirectPath:    proto.String(upload.DirectPath),
			MediaKey:      upload.MediaKey,
			FileEncSHA256: upload.FileEncSHA256,
			FileSHA256:    upload.FileSHA256,
			FileLength:    proto.Uint64(upload.FileLength),
		}
	}

	resp, err := s.client.SendMessage(ctx, to, &msg)
	if err != nil {
		return nil, fmt.Errorf("send media: %w", err)
	}
	return &domain.Message{
		ChatJID:   to.ToNonAD().String(),
		MsgID:     resp.ID,
		SenderJID: s.OwnJID(),
		Type:      msgType,
		Caption:   caption,
		MimeType:  mimeType,
		FileName:  fileName,
		FromMe:    true,
		Read:      true,
		Timestamp: resp.Timestamp.UnixMilli(),
	}, nil
}

// SendReaction sends an emoji reaction to the message identified by
// (chatJID, targetMsgID). targetSenderJID is the author of the target
// message, required by the wire protocol.
func (s *Session) SendReaction(ctx context.Context, chatJID, targetSenderJID, targetMsgID, emoji string) (*domain.Message, error) {
	chat, err := types.ParseJID(chatJID)
	if err != nil {
		return nil, fmt.Errorf("parse chat JID: %w", err)
	}
	sender, err := types.ParseJID(targetSenderJID)
	if err != nil {
		return nil, fmt.Errorf("parse sender JID: %w", err)
	}
	if !s.IsConnected() {
		return nil, ErrNotConnected
	}
	resp, err := s.client.SendMessage(ctx, chat, s.client.BuildReaction(chat, sender, targetMsgID, emoji))
	if err != nil {
		return nil, fmt.Errorf("send reaction: %w", err)
	}
	own := s.OwnJID()
	return &domain.Message{
		ChatJID:   chat.ToNonAD().String(),
		MsgID:     resp.ID,
		SenderJID: own,
		Type:      domain.MessageReaction,
		FromMe:    true,
		Read:      true,
		Timestamp: resp.Timestamp.UnixMilli(),
		Reaction: &domain.Reaction{
			TargetMsgID: targetMsgID,
			Emoji:       emoji,
			SenderJID:   own,
			Timestamp:   resp.Timestamp.UnixMilli(),
		},
	}, nil
}

// MarkRead sends read receipts for the given message IDs. senderJID is the
// author of the messages being acknowledged (relevant in groups).
func (s *Session) MarkRead(ctx context.Context, chatJID, senderJID string, msgIDs []string) error {
	chat, err := types.ParseJID(chatJID)
	if err != nil {
		return fmt.Errorf("parse chat JID: %w", err)
	}
	sender := chat
	if senderJID != "" {
		if sender, err = types.ParseJID(senderJID); err != nil {
			return fmt.Errorf("parse sender JID: %w", err)
		}
	}
	if !s.IsConnected() {
		return ErrNotConnected
	}
	ids := make([]types.MessageID, len(msgIDs))
	for i, id := range msgIDs {
		ids[i] = types.MessageID(id)
	}
	if err := s.client.MarkRead(ctx, ids, time.Now(), chat, sender); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// Contacts reads the provider's contact directory. The result is a
// read-through cache, never authoritative for chat display names.
func (s *Session) Contacts(ctx context.Context) []domain.Contact {
	all, err := s.client.Store.Contacts.GetAllContacts(ctx)
	if err != nil {
		s.logger.Warn("failed to read contacts from device store", zap.Error(err))
		return nil
	}
	var contacts []domain.Contact
	for jid, info := range all {
		contacts = append(contacts, domain.Contact{
			JID:          jid.ToNonAD().String(),
			Name:         info.FullName,
			PushName:     info.PushName,
			BusinessName: info.BusinessName,
			PhoneNumber:  jid.User,
		})
	}
	return contacts
}

func mediaTypeFor(mimeType string) (domain.MessageType, whatsmeow.MediaType) {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return domain.MessageImage, whatsmeow.MediaImage
	case strings.HasPrefix(mimeType, "video/"):
		return domain.MessageVideo, whatsmeow.MediaVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return domain.MessageAudio, whatsmeow.MediaAudio
	default:
		return domain.MessageDocument, whatsmeow.MediaDocument
	}
}
