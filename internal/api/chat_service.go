package api

import (
	"context"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/joaovbs/wab/internal/store"
	wabv1 "github.com/joaovbs/wab/pb/wabv1"
)

// ChatService implements the ChatService gRPC service. Pure reads against the
// mirror database; it works identically whether or not the session is online.
type ChatService struct {
	wabv1.UnimplementedChatServiceServer

	db *store.DB
}

// NewChatService creates a new chat service backed by the store.
func NewChatService(db *store.DB) *ChatService {
	return &ChatService{db: db}
}

func (s *ChatService) ListChats(_ context.Context, req *wabv1.ListChatsRequest) (*wabv1.ListChatsResponse, error) {
	chats, err := s.db.ListChats(int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list chats: %v", err)
	}
	total, err := s.db.ChatCount()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "count chats: %v", err)
	}

	resp := &wabv1.ListChatsResponse{TotalCount: total}
	for i := range chats {
		resp.Chats = append(resp.Chats, chatToProto(&chats[i]))
	}
	return resp, nil
}

func (s *ChatService) GetChat(_ context.Context, req *wabv1.GetChatRequest) (*wabv1.GetChatResponse, error) {
	if req.GetChatJid() == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "chat_jid is required")
	}
	c, err := s.db.GetChat(req.GetChatJid())
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "get chat: %v", err)
	}
	if c == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "chat %q not found", req.GetChatJid())
	}
	return &wabv1.GetChatResponse{Chat: chatToProto(c)}, nil
}
