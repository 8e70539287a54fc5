package wabv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names for use with grpc interceptors and metrics.
const (
	SessionService_Connect_FullMethodName             = "/wab.v1.SessionService/Connect"
	SessionService_Disconnect_FullMethodName          = "/wab.v1.SessionService/Disconnect"
	SessionService_Logout_FullMethodName              = "/wab.v1.SessionService/Logout"
	SessionService_GetConnectionStatus_FullMethodName = "/wab.v1.SessionService/GetConnectionStatus"
	SessionService_GetPairingQR_FullMethodName        = "/wab.v1.SessionService/GetPairingQR"
	SessionService_PairWithCode_FullMethodName        = "/wab.v1.SessionService/PairWithCode"

	ChatService_ListChats_FullMethodName = "/wab.v1.ChatService/ListChats"
	ChatService_GetChat_FullMethodName   = "/wab.v1.ChatService/GetChat"

	MessageService_ListMessages_FullMethodName   = "/wab.v1.MessageService/ListMessages"
	MessageService_SearchMessages_FullMethodName = "/wab.v1.MessageService/SearchMessages"
	MessageService_SendMessage_FullMethodName    = "/wab.v1.MessageService/SendMessage"
	MessageService_SendReaction_FullMethodName   = "/wab.v1.MessageService/SendReaction"
	MessageService_MarkAsRead_FullMethodName     = "/wab.v1.MessageService/MarkAsRead"

	EventService_StreamEvents_FullMethodName = "/wab.v1.EventService/StreamEvents"
)

// ---- SessionService ----

type SessionServiceClient interface {
	Connect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectResponse, error)
	Disconnect(ctx context.Context, in *DisconnectRequest, opts ...grpc.CallOption) (*DisconnectResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	GetConnectionStatus(ctx context.Context, in *GetConnectionStatusRequest, opts ...grpc.CallOption) (*GetConnectionStatusResponse, error)
	GetPairingQR(ctx context.Context, in *GetPairingQRRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PairingEvent], error)
	PairWithCode(ctx context.Context, in *PairWithCodeRequest, opts ...grpc.CallOption) (*PairWithCodeResponse, error)
}

type sessionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSessionServiceClient(cc grpc.ClientConnInterface) SessionServiceClient {
	return &sessionServiceClient{cc}
}

func (c *sessionServiceClient) Connect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectResponse, error) {
	out := new(ConnectResponse)
	if err := c.cc.Invoke(ctx, SessionService_Connect_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionServiceClient) Disconnect(ctx context.Context, in *DisconnectRequest, opts ...grpc.CallOption) (*DisconnectResponse, error) {
	out := new(DisconnectResponse)
	if err := c.cc.Invoke(ctx, SessionService_Disconnect_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	out := new(LogoutResponse)
	if err := c.cc.Invoke(ctx, SessionService_Logout_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionServiceClient) GetConnectionStatus(ctx context.Context, in *GetConnectionStatusRequest, opts ...grpc.CallOption) (*GetConnectionStatusResponse, error) {
	out := new(GetConnectionStatusResponse)
	if err := c.cc.Invoke(ctx, SessionService_GetConnectionStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionServiceClient) GetPairingQR(ctx context.Context, in *GetPairingQRRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PairingEvent], error) {
	stream, err := c.cc.NewStream(ctx, &SessionService_ServiceDesc.Streams[0], SessionService_GetPairingQR_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GetPairingQRRequest, PairingEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *sessionServiceClient) PairWithCode(ctx context.Context, in *PairWithCodeRequest, opts ...grpc.CallOption) (*PairWithCodeResponse, error) {
	out := new(PairWithCodeResponse)
	if err := c.cc.Invoke(ctx, SessionService_PairWithCode_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type SessionServiceServer interface {
	Connect(context.Context, *ConnectRequest) (*ConnectResponse, error)
	Disconnect(context.Context, *DisconnectRequest) (*DisconnectResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	GetConnectionStatus(context.Context, *GetConnectionStatusRequest) (*GetConnectionStatusResponse, error)
	GetPairingQR(*GetPairingQRRequest, grpc.ServerStreamingServer[PairingEvent]) error
	PairWithCode(context.Context, *PairWithCodeRequest) (*PairWithCodeResponse, error)
}

// UnimplementedSessionServiceServer can be embedded for forward compatibility.
type UnimplementedSessionServiceServer struct{}

func (UnimplementedSessionServiceServer) Connect(context.Context, *ConnectRequest) (*ConnectResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Connect not implemented")
}
func (UnimplementedSessionServiceServer) Disconnect(context.Context, *DisconnectRequest) (*DisconnectResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Disconnect not implemented")
}
func (UnimplementedSessionServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedSessionServiceServer) GetConnectionStatus(context.Context, *GetConnectionStatusRequest) (*GetConnectionStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetConnectionStatus not implemented")
}
func (UnimplementedSessionServiceServer) GetPairingQR(*GetPairingQRRequest, grpc.ServerStreamingServer[PairingEvent]) error {
	return status.Errorf(codes.Unimplemented, "method GetPairingQR not implemented")
}
func (UnimplementedSessionServiceServer) PairWithCode(context.Context, *PairWithCodeRequest) (*PairWithCodeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PairWithCode not implemented")
}

func RegisterSessionServiceServer(s grpc.ServiceRegistrar, srv SessionServiceServer) {
	s.RegisterService(&SessionService_ServiceDesc, srv)
}

func _SessionService_Connect_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionServiceServer).Connect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SessionService_Connect_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SessionServiceServer).Connect(ctx, req.(*ConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionService_Disconnect_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DisconnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionServiceServer).Disconnect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SessionService_Disconnect_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SessionServiceServer).Disconnect(ctx, req.(*DisconnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionService_Logout_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LogoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionServiceServer).Logout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SessionService_Logout_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SessionServiceServer).Logout(ctx, req.(*LogoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionService_GetConnectionStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetConnectionStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionServiceServer).GetConnectionStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SessionService_GetConnectionStatus_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SessionServiceServer).GetConnectionStatus(ctx, req.(*GetConnectionStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionService_GetPairingQR_Handler(srv any, stream grpc.ServerStream) error {
	m := new(GetPairingQRRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(SessionServiceServer).GetPairingQR(m, &grpc.GenericServerStream[GetPairingQRRequest, PairingEvent]{ServerStream: stream})
}

func _SessionService_PairWithCode_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PairWithCodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionServiceServer).PairWithCode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SessionService_PairWithCode_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SessionServiceServer).PairWithCode(ctx, req.(*PairWithCodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var SessionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "wab.v1.SessionService",
	HandlerType: (*SessionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Connect", Handler: _SessionService_Connect_Handler},
		{MethodName: "Disconnect", Handler: _SessionService_Disconnect_Handler},
		{MethodName: "Logout", Handler: _SessionService_Logout_Handler},
		{MethodName: "GetConnectionStatus", Handler: _SessionService_GetConnectionStatus_Handler},
		{MethodName: "PairWithCode", Handler: _SessionService_PairWithCode_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "GetPairingQR", Handler: _SessionService_GetPairingQR_Handler, ServerStreams: true},
	},
	Metadata: "wab.proto",
}

// ---- ChatService ----

type ChatServiceClient interface {
	ListChats(ctx context.Context, in *ListChatsRequest, opts ...grpc.CallOption) (*ListChatsResponse, error)
	GetChat(ctx context.Context, in *GetChatRequest, opts ...grpc.CallOption) (*GetChatResponse, error)
}

type chatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) ChatServiceClient {
	return &chatServiceClient{cc}
}

func (c *chatServiceClient) ListChats(ctx context.Context, in *ListChatsRequest, opts ...grpc.CallOption) (*ListChatsResponse, error) {
	out := new(ListChatsResponse)
	if err := c.cc.Invoke(ctx, ChatService_ListChats_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) GetChat(ctx context.Context, in *GetChatRequest, opts ...grpc.CallOption) (*GetChatResponse, error) {
	out := new(GetChatResponse)
	if err := c.cc.Invoke(ctx, ChatService_GetChat_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type ChatServiceServer interface {
	ListChats(context.Context, *ListChatsRequest) (*ListChatsResponse, error)
	GetChat(context.Context, *GetChatRequest) (*GetChatResponse, error)
}

// UnimplementedChatServiceServer can be embedded for forward compatibility.
type UnimplementedChatServiceServer struct{}

func (UnimplementedChatServiceServer) ListChats(context.Context, *ListChatsRequest) (*ListChatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListChats not implemented")
}
func (UnimplementedChatServiceServer) GetChat(context.Context, *GetChatRequest) (*GetChatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChat not implemented")
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatService_ServiceDesc, srv)
}

func _ChatService_ListChats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListChatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).ListChats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_ListChats_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).ListChats(ctx, req.(*ListChatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_GetChat_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetChatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).GetChat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_GetChat_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).GetChat(ctx, req.(*GetChatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ChatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "wab.v1.ChatService",
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListChats", Handler: _ChatService_ListChats_Handler},
		{MethodName: "GetChat", Handler: _ChatService_GetChat_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wab.proto",
}

// ---- MessageService ----

type MessageServiceClient interface {
	ListMessages(ctx context.Context, in *ListMessagesRequest, opts ...grpc.CallOption) (*ListMessagesResponse, error)
	SearchMessages(ctx context.Context, in *SearchMessagesRequest, opts ...grpc.CallOption) (*SearchMessagesResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	SendReaction(ctx context.Context, in *SendReactionRequest, opts ...grpc.CallOption) (*SendReactionResponse, error)
	MarkAsRead(ctx context.Context, in *MarkAsReadRequest, opts ...grpc.CallOption) (*MarkAsReadResponse, error)
}

type messageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMessageServiceClient(cc grpc.ClientConnInterface) MessageServiceClient {
	return &messageServiceClient{cc}
}

func (c *messageServiceClient) ListMessages(ctx context.Context, in *ListMessagesRequest, opts ...grpc.CallOption) (*ListMessagesResponse, error) {
	out := new(ListMessagesResponse)
	if err := c.cc.Invoke(ctx, MessageService_ListMessages_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) SearchMessages(ctx context.Context, in *SearchMessagesRequest, opts ...grpc.CallOption) (*SearchMessagesResponse, error) {
	out := new(SearchMessagesResponse)
	if err := c.cc.Invoke(ctx, MessageService_SearchMessages_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	out := new(SendMessageResponse)
	if err := c.cc.Invoke(ctx, MessageService_SendMessage_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) SendReaction(ctx context.Context, in *SendReactionRequest, opts ...grpc.CallOption) (*SendReactionResponse, error) {
	out := new(SendReactionResponse)
	if err := c.cc.Invoke(ctx, MessageService_SendReaction_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) MarkAsRead(ctx context.Context, in *MarkAsReadRequest, opts ...grpc.CallOption) (*MarkAsReadResponse, error) {
	out := new(MarkAsReadResponse)
	if err := c.cc.Invoke(ctx, MessageService_MarkAsRead_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type MessageServiceServer interface {
	ListMessages(context.Context, *ListMessagesRequest) (*ListMessagesResponse, error)
	SearchMessages(context.Context, *SearchMessagesRequest) (*SearchMessagesResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	SendReaction(context.Context, *SendReactionRequest) (*SendReactionResponse, error)
	MarkAsRead(context.Context, *MarkAsReadRequest) (*MarkAsReadResponse, error)
}

// UnimplementedMessageServiceServer can be embedded for forward compatibility.
type UnimplementedMessageServiceServer struct{}

func (UnimplementedMessageServiceServer) ListMessages(context.Context, *ListMessagesRequest) (*ListMessagesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMessages not implemented")
}
func (UnimplementedMessageServiceServer) SearchMessages(context.Context, *SearchMessagesRequest) (*SearchMessagesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchMessages not implemented")
}
func (UnimplementedMessageServiceServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedMessageServiceServer) SendReaction(context.Context, *SendReactionRequest) (*SendReactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendReaction not implemented")
}
func (UnimplementedMessageServiceServer) MarkAsRead(context.Context, *MarkAsReadRequest) (*MarkAsReadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkAsRead not implemented")
}

func RegisterMessageServiceServer(s grpc.ServiceRegistrar, srv MessageServiceServer) {
	s.RegisterService(&MessageService_ServiceDesc, srv)
}

func _MessageService_ListMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).ListMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageService_ListMessages_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessageServiceServer).ListMessages(ctx, req.(*ListMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessageService_SearchMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).SearchMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageService_SearchMessages_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessageServiceServer).SearchMessages(ctx, req.(*SearchMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessageService_SendMessage_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageService_SendMessage_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessageServiceServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessageService_SendReaction_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendReactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).SendReaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageService_SendReaction_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessageServiceServer).SendReaction(ctx, req.(*SendReactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessageService_MarkAsRead_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MarkAsReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).MarkAsRead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageService_MarkAsRead_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessageServiceServer).MarkAsRead(ctx, req.(*MarkAsReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var MessageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "wab.v1.MessageService",
	HandlerType: (*MessageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListMessages", Handler: _MessageService_ListMessages_Handler},
		{MethodName: "SearchMessages", Handler: _MessageService_SearchMessages_Handler},
		{MethodName: "SendMessage", Handler: _MessageService_SendMessage_Handler},
		{MethodName: "SendReaction", Handler: _MessageService_SendReaction_Handler},
		{MethodName: "MarkAsRead", Handler: _MessageService_MarkAsRead_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wab.proto",
}

// ---- EventService ----

type EventServiceClient interface {
	StreamEvents(ctx context.Context, in *StreamEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventEnvelope], error)
}

type eventServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEventServiceClient(cc grpc.ClientConnInterface) EventServiceClient {
	return &eventServiceClient{cc}
}

func (c *eventServiceClient) StreamEvents(ctx context.Context, in *StreamEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventEnvelope], error) {
	stream, err := c.cc.NewStream(ctx, &EventService_ServiceDesc.Streams[0], EventService_StreamEvents_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StreamEventsRequest, EventEnvelope]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type EventServiceServer interface {
	StreamEvents(*StreamEventsRequest, grpc.ServerStreamingServer[EventEnvelope]) error
}

// UnimplementedEventServiceServer can be embedded for forward compatibility.
type UnimplementedEventServiceServer struct{}

func (UnimplementedEventServiceServer) StreamEvents(*StreamEventsRequest, grpc.ServerStreamingServer[EventEnvelope]) error {
	return status.Errorf(codes.Unimplemented, "method StreamEvents not implemented")
}

func RegisterEventServiceServer(s grpc.ServiceRegistrar, srv EventServiceServer) {
	s.RegisterService(&EventService_ServiceDesc, srv)
}

func _EventService_StreamEvents_Handler(srv any, stream grpc.ServerStream) error {
	m := new(StreamEventsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(EventServiceServer).StreamEvents(m, &grpc.GenericServerStream[StreamEventsRequest, EventEnvelope]{ServerStream: stream})
}

var EventService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "wab.v1.EventService",
	HandlerType: (*EventServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{StreamName: "StreamEvents", Handler: _EventService_StreamEvents_Handler, ServerStreams: true},
	},
	Metadata: "wab.proto",
}
