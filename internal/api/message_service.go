package api

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/joaovbs/wab/internal/bus"
	"github.com/joaovbs/wab/internal/domain"
	"github.com/joaovbs/wab/internal/store"
	"github.com/joaovbs/wab/internal/wa"
	wabv1 "github.com/joaovbs/wab/pb/wabv1"
)

// MessageService implements the MessageService gRPC service. Reads come from
// the mirror database; sends go through the live session synchronously and
// are mirrored locally once the server acknowledges them.
type MessageService struct {
	wabv1.UnimplementedMessageServiceServer

	session SessionManager
	db      *store.DB
	bus     *bus.Bus
	logger  *zap.Logger
}

// NewMessageService creates a new message service.
func NewMessageService(session SessionManager, db *store.DB, b *bus.Bus, logger *zap.Logger) *MessageService {
	return &MessageService{session: session, db: db, bus: b, logger: logger}
}

func (s *MessageService) ListMessages(_ context.Context, req *wabv1.ListMessagesRequest) (*wabv1.ListMessagesResponse, error) {
	if req.GetChatJid() == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "chat_jid is required")
	}
	msgs, err := s.db.ListMessages(req.GetChatJid(), int(req.GetLimit()), req.GetBeforeMsgId())
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list messages: %v", err)
	}

	resp := &wabv1.ListMessagesResponse{}
	for i := range msgs {
		resp.Messages = append(resp.Messages, messageToProto(&msgs[i]))
	}
	return resp, nil
}

func (s *MessageService) SearchMessages(_ context.Context, req *wabv1.SearchMessagesRequest) (*wabv1.SearchMessagesResponse, error) {
	if req.GetQuery() == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "query is required")
	}
	results, err := s.db.SearchMessages(req.GetQuery(), req.GetChatJid(), int(req.GetLimit()))
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "search messages: %v", err)
	}

	resp := &wabv1.SearchMessagesResponse{}
	for i := range results {
		resp.Results = append(resp.Results, &wabv1.SearchResult{
			Message: messageToProto(&results[i].Message),
			Snippet: results[i].Snippet,
		})
	}
	return resp, nil
}

func (s *MessageService) SendMessage(ctx context.Context, req *wabv1.SendMessageRequest) (*wabv1.SendMessageResponse, error) {
	if req.GetChatJid() == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "chat_jid is required")
	}
	if _, err := domain.ParseJID(req.GetChatJid()); err != nil {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "chat_jid: %v", err)
	}
	hasMedia := len(req.GetMedia()) > 0
	if !hasMedia && req.GetText() == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "either text or media is required")
	}
	if hasMedia && req.GetMimeType() == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "mime_type is required with media")
	}
	if !s.session.IsLoggedIn() {
		return &wabv1.SendMessageResponse{ErrorMessage: wa.ErrNotLoggedIn.Error()}, nil
	}

	var (
		m   *domain.Message
		err error
	)
	if hasMedia {
		m, err = s.session.SendMedia(ctx, req.GetChatJid(), req.GetMedia(), req.GetMimeType(), req.GetFileName(), req.GetCaption())
	} else {
		m, err = s.session.SendText(ctx, req.GetChatJid(), req.GetText())
	}
	switch {
	case err == nil:
	case errors.Is(err, wa.ErrNotConnected):
		return &wabv1.SendMessageResponse{ErrorMessage: err.Error()}, nil
	default:
		return nil, grpcstatus.Errorf(codes.Internal, "send message: %v", err)
	}

	s.mirrorSent(m)
	return &wabv1.SendMessageResponse{Success: true, Message: messageToProto(m)}, nil
}

func (s *MessageService) SendReaction(ctx context.Context, req *wabv1.SendReactionRequest) (*wabv1.SendReactionResponse, error) {
	if req.GetChatJid() == "" || req.GetTargetMsgId() == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "chat_jid and target_msg_id are required")
	}
	target, err := s.db.GetMessage(req.GetChatJid(), req.GetTargetMsgId())
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "look up target: %v", err)
	}
	if target == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "message %q not found in chat %q", req.GetTargetMsgId(), req.GetChatJid())
	}
	if !s.session.IsLoggedIn() {
		return &wabv1.SendReactionResponse{ErrorMessage: wa.ErrNotLoggedIn.Error()}, nil
	}

	// The wire protocol addresses reactions by the target's author.
	targetSender := target.SenderJID
	if target.FromMe {
		targetSender = s.session.OwnJID()
	}

	m, err := s.session.SendReaction(ctx, req.GetChatJid(), targetSender, req.GetTargetMsgId(), req.GetEmoji())
	switch {
	case err == nil:
	case errors.Is(err, wa.ErrNotConnected):
		return &wabv1.SendReactionResponse{ErrorMessage: err.Error()}, nil
	default:
		return nil, grpcstatus.Errorf(codes.Internal, "send reaction: %v", err)
	}

	s.mirrorSent(m)
	return &wabv1.SendReactionResponse{Success: true}, nil
}

func (s *MessageService) MarkAsRead(ctx context.Context, req *wabv1.MarkAsReadRequest) (*wabv1.MarkAsReadResponse, error) {
	if req.GetChatJid() == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "chat_jid is required")
	}
	if len(req.GetMessageIds()) == 0 {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "message_ids is required")
	}

	// Receipts are addressed per message author. Group the IDs so one RPC
	// covers messages from multiple participants of a group chat.
	bySender := make(map[string][]string)
	for _, id := range req.GetMessageIds() {
		m, err := s.db.GetMessage(req.GetChatJid(), id)
		if err != nil {
			return nil, grpcstatus.Errorf(codes.Internal, "look up message: %v", err)
		}
		if m == nil || m.FromMe {
			continue
		}
		bySender[m.SenderJID] = append(bySender[m.SenderJID], id)
	}

	for sender, ids := range bySender {
		if err := s.session.MarkRead(ctx, req.GetChatJid(), sender, ids); err != nil {
			if errors.Is(err, wa.ErrNotConnected) {
				return &wabv1.MarkAsReadResponse{ErrorMessage: err.Error()}, nil
			}
			return nil, grpcstatus.Errorf(codes.Internal, "mark read: %v", err)
		}
	}

	if err := s.db.UpdateReadStatus(req.GetChatJid(), req.GetMessageIds(), true); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "update read status: %v", err)
	}
	if err := s.db.SetUnreadCount(req.GetChatJid(), 0); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "reset unread count: %v", err)
	}

	s.publish(domain.KindMessageRead, domain.MessageRead{
		ChatJID:    req.GetChatJid(),
		MessageIDs: req.GetMessageIds(),
	})
	if c, err := s.db.GetChat(req.GetChatJid()); err == nil && c != nil {
		s.publish(domain.KindChatUpdated, domain.ChatUpdated{Chat: c})
	}
	return &wabv1.MarkAsReadResponse{Success: true}, nil
}

// mirrorSent records a server-accepted outbound message locally and announces
// it. The network send already succeeded, so mirror failures are logged and
// do not fail the RPC.
func (s *MessageService) mirrorSent(m *domain.Message) {
	if err := s.db.EnsureChat(m.ChatJID, chatTypeOf(m.ChatJID), ""); err != nil {
		s.logger.Error("failed to ensure chat for sent message", zap.Error(err), zap.String("chat", m.ChatJID))
		return
	}
	if err := s.db.CreateMessage(m); err != nil {
		s.logger.Error("failed to mirror sent message", zap.Error(err),
			zap.String("chat", m.ChatJID), zap.String("msg_id", m.MsgID))
		return
	}
	if err := s.db.UpdateLastMessage(m.ChatJID, wa.Preview(m), "me", m.Timestamp); err != nil {
		s.logger.Error("failed to update chat summary", zap.Error(err), zap.String("chat", m.ChatJID))
	}
	s.publish(domain.KindMessageSent, domain.MessageEvent{Message: m})
}

func (s *MessageService) publish(kind domain.EventKind, payload any) {
	s.bus.Publish(domain.Event{Kind: kind, Timestamp: time.Now(), Payload: payload})
}

func chatTypeOf(jid string) domain.ChatType {
	parsed, err := domain.ParseJID(jid)
	if err == nil && parsed.IsGroup() {
		return domain.ChatGroup
	}
	return domain.ChatPrivate
}
