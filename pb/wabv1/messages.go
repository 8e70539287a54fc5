package wabv1

import "fmt"

// ---- session ----

type ConnectRequest struct{}

func (x *ConnectRequest) Reset()         { *x = ConnectRequest{} }
func (x *ConnectRequest) String() string { return messageString(x) }
func (*ConnectRequest) ProtoMessage()    {}

type ConnectResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ErrorMessage string `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (x *ConnectResponse) Reset()         { *x = ConnectResponse{} }
func (x *ConnectResponse) String() string { return messageString(x) }
func (*ConnectResponse) ProtoMessage()    {}

func (x *ConnectResponse) GetSuccess() bool {
	if x == nil {
		return false
	}
	return x.Success
}

func (x *ConnectResponse) GetErrorMessage() string {
	if x == nil {
		return ""
	}
	return x.ErrorMessage
}

type DisconnectRequest struct{}

func (x *DisconnectRequest) Reset()         { *x = DisconnectRequest{} }
func (x *DisconnectRequest) String() string { return messageString(x) }
func (*DisconnectRequest) ProtoMessage()    {}

type DisconnectResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ErrorMessage string `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (x *DisconnectResponse) Reset()         { *x = DisconnectResponse{} }
func (x *DisconnectResponse) String() string { return messageString(x) }
func (*DisconnectResponse) ProtoMessage()    {}

func (x *DisconnectResponse) GetSuccess() bool {
	if x == nil {
		return false
	}
	return x.Success
}

func (x *DisconnectResponse) GetErrorMessage() string {
	if x == nil {
		return ""
	}
	return x.ErrorMessage
}

type LogoutRequest struct{}

func (x *LogoutRequest) Reset()         { *x = LogoutRequest{} }
func (x *LogoutRequest) String() string { return messageString(x) }
func (*LogoutRequest) ProtoMessage()    {}

type LogoutResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ErrorMessage string `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (x *LogoutResponse) Reset()         { *x = LogoutResponse{} }
func (x *LogoutResponse) String() string { return messageString(x) }
func (*LogoutResponse) ProtoMessage()    {}

func (x *LogoutResponse) GetSuccess() bool {
	if x == nil {
		return false
	}
	return x.Success
}

func (x *LogoutResponse) GetErrorMessage() string {
	if x == nil {
		return ""
	}
	return x.ErrorMessage
}

type GetConnectionStatusRequest struct{}

func (x *GetConnectionStatusRequest) Reset()         { *x = GetConnectionStatusRequest{} }
func (x *GetConnectionStatusRequest) String() string { return messageString(x) }
func (*GetConnectionStatusRequest) ProtoMessage()    {}

type GetConnectionStatusResponse struct {
	State       string `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	Connected   bool   `protobuf:"varint,2,opt,name=connected,proto3" json:"connected,omitempty"`
	LoggedIn    bool   `protobuf:"varint,3,opt,name=logged_in,json=loggedIn,proto3" json:"logged_in,omitempty"`
	OwnJid      string `protobuf:"bytes,4,opt,name=own_jid,json=ownJid,proto3" json:"own_jid,omitempty"`
	PhoneNumber string `protobuf:"bytes,5,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
}

func (x *GetConnectionStatusResponse) Reset()         { *x = GetConnectionStatusResponse{} }
func (x *GetConnectionStatusResponse) String() string { return messageString(x) }
func (*GetConnectionStatusResponse) ProtoMessage()    {}

func (x *GetConnectionStatusResponse) GetState() string {
	if x == nil {
		return ""
	}
	return x.State
}

func (x *GetConnectionStatusResponse) GetConnected() bool {
	if x == nil {
		return false
	}
	return x.Connected
}

func (x *GetConnectionStatusResponse) GetLoggedIn() bool {
	if x == nil {
		return false
	}
	return x.LoggedIn
}

func (x *GetConnectionStatusResponse) GetOwnJid() string {
	if x == nil {
		return ""
	}
	return x.OwnJid
}

func (x *GetConnectionStatusResponse) GetPhoneNumber() string {
	if x == nil {
		return ""
	}
	return x.PhoneNumber
}

type GetPairingQRRequest struct{}

func (x *GetPairingQRRequest) Reset()         { *x = GetPairingQRRequest{} }
func (x *GetPairingQRRequest) String() string { return messageString(x) }
func (*GetPairingQRRequest) ProtoMessage()    {}

type PairingEvent struct {
	EventType string `protobuf:"bytes,1,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	QrCode    string `protobuf:"bytes,2,opt,name=qr_code,json=qrCode,proto3" json:"qr_code,omitempty"`
	Message   string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *PairingEvent) Reset()         { *x = PairingEvent{} }
func (x *PairingEvent) String() string { return messageString(x) }
func (*PairingEvent) ProtoMessage()    {}

func (x *PairingEvent) GetEventType() string {
	if x == nil {
		return ""
	}
	return x.EventType
}

func (x *PairingEvent) GetQrCode() string {
	if x == nil {
		return ""
	}
	return x.QrCode
}

func (x *PairingEvent) GetMessage() string {
	if x == nil {
		return ""
	}
	return x.Message
}

type PairWithCodeRequest struct {
	PhoneNumber string `protobuf:"bytes,1,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
}

func (x *PairWithCodeRequest) Reset()         { *x = PairWithCodeRequest{} }
func (x *PairWithCodeRequest) String() string { return messageString(x) }
func (*PairWithCodeRequest) ProtoMessage()    {}

func (x *PairWithCodeRequest) GetPhoneNumber() string {
	if x == nil {
		return ""
	}
	return x.PhoneNumber
}

type PairWithCodeResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	PairingCode  string `protobuf:"bytes,2,opt,name=pairing_code,json=pairingCode,proto3" json:"pairing_code,omitempty"`
	ErrorMessage string `protobuf:"bytes,3,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (x *PairWithCodeResponse) Reset()         { *x = PairWithCodeResponse{} }
func (x *PairWithCodeResponse) String() string { return messageString(x) }
func (*PairWithCodeResponse) ProtoMessage()    {}

func (x *PairWithCodeResponse) GetSuccess() bool {
	if x == nil {
		return false
	}
	return x.Success
}

func (x *PairWithCodeResponse) GetPairingCode() string {
	if x == nil {
		return ""
	}
	return x.PairingCode
}

func (x *PairWithCodeResponse) GetErrorMessage() string {
	if x == nil {
		return ""
	}
	return x.ErrorMessage
}

// ---- chats ----

type Chat struct {
	Jid               string `protobuf:"bytes,1,opt,name=jid,proto3" json:"jid,omitempty"`
	Name              string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ChatType          string `protobuf:"bytes,3,opt,name=chat_type,json=chatType,proto3" json:"chat_type,omitempty"`
	LastMessageText   string `protobuf:"bytes,4,opt,name=last_message_text,json=lastMessageText,proto3" json:"last_message_text,omitempty"`
	LastMessageSender string `protobuf:"bytes,5,opt,name=last_message_sender,json=lastMessageSender,proto3" json:"last_message_sender,omitempty"`
	LastMessageAtMs   int64  `protobuf:"varint,6,opt,name=last_message_at_ms,json=lastMessageAtMs,proto3" json:"last_message_at_ms,omitempty"`
	UnreadCount       int64  `protobuf:"varint,7,opt,name=unread_count,json=unreadCount,proto3" json:"unread_count,omitempty"`
	Archived          bool   `protobuf:"varint,8,opt,name=archived,proto3" json:"archived,omitempty"`
	Muted             bool   `protobuf:"varint,9,opt,name=muted,proto3" json:"muted,omitempty"`
}

func (x *Chat) Reset()         { *x = Chat{} }
func (x *Chat) String() string { return messageString(x) }
func (*Chat) ProtoMessage()    {}

func (x *Chat) GetJid() string {
	if x == nil {
		return ""
	}
	return x.Jid
}

func (x *Chat) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *Chat) GetChatType() string {
	if x == nil {
		return ""
	}
	return x.ChatType
}

func (x *Chat) GetLastMessageText() string {
	if x == nil {
		return ""
	}
	return x.LastMessageText
}

func (x *Chat) GetLastMessageSender() string {
	if x == nil {
		return ""
	}
	return x.LastMessageSender
}

func (x *Chat) GetLastMessageAtMs() int64 {
	if x == nil {
		return 0
	}
	return x.LastMessageAtMs
}

func (x *Chat) GetUnreadCount() int64 {
	if x == nil {
		return 0
	}
	return x.UnreadCount
}

func (x *Chat) GetArchived() bool {
	if x == nil {
		return false
	}
	return x.Archived
}

func (x *Chat) GetMuted() bool {
	if x == nil {
		return false
	}
	return x.Muted
}

type ListChatsRequest struct {
	Limit  int64 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset int64 `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
}

func (x *ListChatsRequest) Reset()         { *x = ListChatsRequest{} }
func (x *ListChatsRequest) String() string { return messageString(x) }
func (*ListChatsRequest) ProtoMessage()    {}

func (x *ListChatsRequest) GetLimit() int64 {
	if x == nil {
		return 0
	}
	return x.Limit
}

func (x *ListChatsRequest) GetOffset() int64 {
	if x == nil {
		return 0
	}
	return x.Offset
}

type ListChatsResponse struct {
	Chats      []*Chat `protobuf:"bytes,1,rep,name=chats,proto3" json:"chats,omitempty"`
	TotalCount int64   `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
}

func (x *ListChatsResponse) Reset()         { *x = ListChatsResponse{} }
func (x *ListChatsResponse) String() string { return messageString(x) }
func (*ListChatsResponse) ProtoMessage()    {}

func (x *ListChatsResponse) GetChats() []*Chat {
	if x == nil {
		return nil
	}
	return x.Chats
}

func (x *ListChatsResponse) GetTotalCount() int64 {
	if x == nil {
		return 0
	}
	return x.TotalCount
}

type GetChatRequest struct {
	ChatJid string `protobuf:"bytes,1,opt,name=chat_jid,json=chatJid,proto3" json:"chat_jid,omitempty"`
}

func (x *GetChatRequest) Reset()         { *x = GetChatRequest{} }
func (x *GetChatRequest) String() string { return messageString(x) }
func (*GetChatRequest) ProtoMessage()    {}

func (x *GetChatRequest) GetChatJid() string {
	if x == nil {
		return ""
	}
	return x.ChatJid
}

type GetChatResponse struct {
	Chat *Chat `protobuf:"bytes,1,opt,name=chat,proto3" json:"chat,omitempty"`
}

func (x *GetChatResponse) Reset()         { *x = GetChatResponse{} }
func (x *GetChatResponse) String() string { return messageString(x) }
func (*GetChatResponse) ProtoMessage()    {}

func (x *GetChatResponse) GetChat() *Chat {
	if x == nil {
		return nil
	}
	return x.Chat
}

// ---- messages ----

type Reaction struct {
	TargetMsgId string `protobuf:"bytes,1,opt,name=target_msg_id,json=targetMsgId,proto3" json:"target_msg_id,omitempty"`
	Emoji       string `protobuf:"bytes,2,opt,name=emoji,proto3" json:"emoji,omitempty"`
	SenderJid   string `protobuf:"bytes,3,opt,name=sender_jid,json=senderJid,proto3" json:"sender_jid,omitempty"`
	TimestampMs int64  `protobuf:"varint,4,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
}

func (x *Reaction) Reset()         { *x = Reaction{} }
func (x *Reaction) String() string { return messageString(x) }
func (*Reaction) ProtoMessage()    {}

func (x *Reaction) GetTargetMsgId() string {
	if x == nil {
		return ""
	}
	return x.TargetMsgId
}

func (x *Reaction) GetEmoji() string {
	if x == nil {
		return ""
	}
	return x.Emoji
}

func (x *Reaction) GetSenderJid() string {
	if x == nil {
		return ""
	}
	return x.SenderJid
}

func (x *Reaction) GetTimestampMs() int64 {
	if x == nil {
		return 0
	}
	return x.TimestampMs
}

type Location struct {
	Latitude  float64 `protobuf:"fixed64,1,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude float64 `protobuf:"fixed64,2,opt,name=longitude,proto3" json:"longitude,omitempty"`
	Name      string  `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Address   string  `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
}

func (x *Location) Reset()         { *x = Location{} }
func (x *Location) String() string { return messageString(x) }
func (*Location) ProtoMessage()    {}

func (x *Location) GetLatitude() float64 {
	if x == nil {
		return 0
	}
	return x.Latitude
}

func (x *Location) GetLongitude() float64 {
	if x == nil {
		return 0
	}
	return x.Longitude
}

func (x *Location) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *Location) GetAddress() string {
	if x == nil {
		return ""
	}
	return x.Address
}

type Message struct {
	ChatJid     string    `protobuf:"bytes,1,opt,name=chat_jid,json=chatJid,proto3" json:"chat_jid,omitempty"`
	MsgId       string    `protobuf:"bytes,2,opt,name=msg_id,json=msgId,proto3" json:"msg_id,omitempty"`
	SenderJid   string    `protobuf:"bytes,3,opt,name=sender_jid,json=senderJid,proto3" json:"sender_jid,omitempty"`
	MessageType string    `protobuf:"bytes,4,opt,name=message_type,json=messageType,proto3" json:"message_type,omitempty"`
	Text        string    `protobuf:"bytes,5,opt,name=text,proto3" json:"text,omitempty"`
	Caption     string    `protobuf:"bytes,6,opt,name=caption,proto3" json:"caption,omitempty"`
	MediaUrl    string    `protobuf:"bytes,7,opt,name=media_url,json=mediaUrl,proto3" json:"media_url,omitempty"`
	MimeType    string    `protobuf:"bytes,8,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	FileName    string    `protobuf:"bytes,9,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	QuotedMsgId string    `protobuf:"bytes,10,opt,name=quoted_msg_id,json=quotedMsgId,proto3" json:"quoted_msg_id,omitempty"`
	Reaction    *Reaction `protobuf:"bytes,11,opt,name=reaction,proto3" json:"reaction,omitempty"`
	Location    *Location `protobuf:"bytes,12,opt,name=location,proto3" json:"location,omitempty"`
	FromMe      bool      `protobuf:"varint,13,opt,name=from_me,json=fromMe,proto3" json:"from_me,omitempty"`
	Read        bool      `protobuf:"varint,14,opt,name=read,proto3" json:"read,omitempty"`
	TimestampMs int64     `protobuf:"varint,15,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
}

func (x *Message) Reset()         { *x = Message{} }
func (x *Message) String() string { return messageString(x) }
func (*Message) ProtoMessage()    {}

func (x *Message) GetChatJid() string {
	if x == nil {
		return ""
	}
	return x.ChatJid
}

func (x *Message) GetMsgId() string {
	if x == nil {
		return ""
	}
	return x.MsgId
}

func (x *Message) GetSenderJid() string {
	if x == nil {
		return ""
	}
	return x.SenderJid
}

func (x *Message) GetMessageType() string {
	if x == nil {
		return ""
	}
	return x.MessageType
}

func (x *Message) GetText() string {
	if x == nil {
		return ""
	}
	return x.Text
}

func (x *Message) GetCaption() string {
	if x == nil {
		return ""
	}
	return x.Caption
}

func (x *Message) GetMediaUrl() string {
	if x == nil {
		return ""
	}
	return x.MediaUrl
}

func (x *Message) GetMimeType() string {
	if x == nil {
		return ""
	}
	return x.MimeType
}

func (x *Message) GetFileName() string {
	if x == nil {
		return ""
	}
	return x.FileName
}

func (x *Message) GetQuotedMsgId() string {
	if x == nil {
		return ""
	}
	return x.QuotedMsgId
}

func (x *Message) GetReaction() *Reaction {
	if x == nil {
		return nil
	}
	return x.Reaction
}

func (x *Message) GetLocation() *Location {
	if x == nil {
		return nil
	}
	return x.Location
}

func (x *Message) GetFromMe() bool {
	if x == nil {
		return false
	}
	return x.FromMe
}

func (x *Message) GetRead() bool {
	if x == nil {
		return false
	}
	return x.Read
}

func (x *Message) GetTimestampMs() int64 {
	if x == nil {
		return 0
	}
	return x.TimestampMs
}

type ListMessagesRequest struct {
	ChatJid     string `protobuf:"bytes,1,opt,name=chat_jid,json=chatJid,proto3" json:"chat_jid,omitempty"`
	Limit       int64  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	BeforeMsgId string `protobuf:"bytes,3,opt,name=before_msg_id,json=beforeMsgId,proto3" json:"before_msg_id,omitempty"`
}

func (x *ListMessagesRequest) Reset()         { *x = ListMessagesRequest{} }
func (x *ListMessagesRequest) String() string { return messageString(x) }
func (*ListMessagesRequest) ProtoMessage()    {}

func (x *ListMessagesRequest) GetChatJid() string {
	if x == nil {
		return ""
	}
	return x.ChatJid
}

func (x *ListMessagesRequest) GetLimit() int64 {
	if x == nil {
		return 0
	}
	return x.Limit
}

func (x *ListMessagesRequest) GetBeforeMsgId() string {
	if x == nil {
		return ""
	}
	return x.BeforeMsgId
}

type ListMessagesResponse struct {
	Messages []*Message `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
}

func (x *ListMessagesResponse) Reset()         { *x = ListMessagesResponse{} }
func (x *ListMessagesResponse) String() string { return messageString(x) }
func (*ListMessagesResponse) ProtoMessage()    {}

func (x *ListMessagesResponse) GetMessages() []*Message {
	if x == nil {
		return nil
	}
	return x.Messages
}

type SearchMessagesRequest struct {
	Query   string `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	ChatJid string `protobuf:"bytes,2,opt,name=chat_jid,json=chatJid,proto3" json:"chat_jid,omitempty"`
	Limit   int64  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (x *SearchMessagesRequest) Reset()         { *x = SearchMessagesRequest{} }
func (x *SearchMessagesRequest) String() string { return messageString(x) }
func (*SearchMessagesRequest) ProtoMessage()    {}

func (x *SearchMessagesRequest) GetQuery() string {
	if x == nil {
		return ""
	}
	return x.Query
}

func (x *SearchMessagesRequest) GetChatJid() string {
	if x == nil {
		return ""
	}
	return x.ChatJid
}

func (x *SearchMessagesRequest) GetLimit() int64 {
	if x == nil {
		return 0
	}
	return x.Limit
}

type SearchResult struct {
	Message *Message `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Snippet string   `protobuf:"bytes,2,opt,name=snippet,proto3" json:"snippet,omitempty"`
}

func (x *SearchResult) Reset()         { *x = SearchResult{} }
func (x *SearchResult) String() string { return messageString(x) }
func (*SearchResult) ProtoMessage()    {}

func (x *SearchResult) GetMessage() *Message {
	if x == nil {
		return nil
	}
	return x.Message
}

func (x *SearchResult) GetSnippet() string {
	if x == nil {
		return ""
	}
	return x.Snippet
}

type SearchMessagesResponse struct {
	Results []*SearchResult `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (x *SearchMessagesResponse) Reset()         { *x = SearchMessagesResponse{} }
func (x *SearchMessagesResponse) String() string { return messageString(x) }
func (*SearchMessagesResponse) ProtoMessage()    {}

func (x *SearchMessagesResponse) GetResults() []*SearchResult {
	if x == nil {
		return nil
	}
	return x.Results
}

type SendMessageRequest struct {
	ChatJid  string `protobuf:"bytes,1,opt,name=chat_jid,json=chatJid,proto3" json:"chat_jid,omitempty"`
	Text     string `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Media    []byte `protobuf:"bytes,3,opt,name=media,proto3" json:"media,omitempty"`
	MimeType string `protobuf:"bytes,4,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	FileName string `protobuf:"bytes,5,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Caption  string `protobuf:"bytes,6,opt,name=caption,proto3" json:"caption,omitempty"`
}

func (x *SendMessageRequest) Reset()         { *x = SendMessageRequest{} }
func (x *SendMessageRequest) String() string { return messageString(x) }
func (*SendMessageRequest) ProtoMessage()    {}

func (x *SendMessageRequest) GetChatJid() string {
	if x == nil {
		return ""
	}
	return x.ChatJid
}

func (x *SendMessageRequest) GetText() string {
	if x == nil {
		return ""
	}
	return x.Text
}

func (x *SendMessageRequest) GetMedia() []byte {
	if x == nil {
		return nil
	}
	return x.Media
}

func (x *SendMessageRequest) GetMimeType() string {
	if x == nil {
		return ""
	}
	return x.MimeType
}

func (x *SendMessageRequest) GetFileName() string {
	if x == nil {
		return ""
	}
	return x.FileName
}

func (x *SendMessageRequest) GetCaption() string {
	if x == nil {
		return ""
	}
	return x.Caption
}

type SendMessageResponse struct {
	Success      bool     `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ErrorMessage string   `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Message      *Message `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *SendMessageResponse) Reset()         { *x = SendMessageResponse{} }
func (x *SendMessageResponse) String() string { return messageString(x) }
func (*SendMessageResponse) ProtoMessage()    {}

func (x *SendMessageResponse) GetSuccess() bool {
	if x == nil {
		return false
	}
	return x.Success
}

func (x *SendMessageResponse) GetErrorMessage() string {
	if x == nil {
		return ""
	}
	return x.ErrorMessage
}

func (x *SendMessageResponse) GetMessage() *Message {
	if x == nil {
		return nil
	}
	return x.Message
}

type SendReactionRequest struct {
	ChatJid     string `protobuf:"bytes,1,opt,name=chat_jid,json=chatJid,proto3" json:"chat_jid,omitempty"`
	TargetMsgId string `protobuf:"bytes,2,opt,name=target_msg_id,json=targetMsgId,proto3" json:"target_msg_id,omitempty"`
	Emoji       string `protobuf:"bytes,3,opt,name=emoji,proto3" json:"emoji,omitempty"`
}

func (x *SendReactionRequest) Reset()         { *x = SendReactionRequest{} }
func (x *SendReactionRequest) String() string { return messageString(x) }
func (*SendReactionRequest) ProtoMessage()    {}

func (x *SendReactionRequest) GetChatJid() string {
	if x == nil {
		return ""
	}
	return x.ChatJid
}

func (x *SendReactionRequest) GetTargetMsgId() string {
	if x == nil {
		return ""
	}
	return x.TargetMsgId
}

func (x *SendReactionRequest) GetEmoji() string {
	if x == nil {
		return ""
	}
	return x.Emoji
}

type SendReactionResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ErrorMessage string `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (x *SendReactionResponse) Reset()         { *x = SendReactionResponse{} }
func (x *SendReactionResponse) String() string { return messageString(x) }
func (*SendReactionResponse) ProtoMessage()    {}

func (x *SendReactionResponse) GetSuccess() bool {
	if x == nil {
		return false
	}
	return x.Success
}

func (x *SendReactionResponse) GetErrorMessage() string {
	if x == nil {
		return ""
	}
	return x.ErrorMessage
}

type MarkAsReadRequest struct {
	ChatJid    string   `protobuf:"bytes,1,opt,name=chat_jid,json=chatJid,proto3" json:"chat_jid,omitempty"`
	MessageIds []string `protobuf:"bytes,2,rep,name=message_ids,json=messageIds,proto3" json:"message_ids,omitempty"`
}

func (x *MarkAsReadRequest) Reset()         { *x = MarkAsReadRequest{} }
func (x *MarkAsReadRequest) String() string { return messageString(x) }
func (*MarkAsReadRequest) ProtoMessage()    {}

func (x *MarkAsReadRequest) GetChatJid() string {
	if x == nil {
		return ""
	}
	return x.ChatJid
}

func (x *MarkAsReadRequest) GetMessageIds() []string {
	if x == nil {
		return nil
	}
	return x.MessageIds
}

type MarkAsReadResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ErrorMessage string `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (x *MarkAsReadResponse) Reset()         { *x = MarkAsReadResponse{} }
func (x *MarkAsReadResponse) String() string { return messageString(x) }
func (*MarkAsReadResponse) ProtoMessage()    {}

func (x *MarkAsReadResponse) GetSuccess() bool {
	if x == nil {
		return false
	}
	return x.Success
}

func (x *MarkAsReadResponse) GetErrorMessage() string {
	if x == nil {
		return ""
	}
	return x.ErrorMessage
}

// ---- events ----

type StreamEventsRequest struct {
	Kinds []string `protobuf:"bytes,1,rep,name=kinds,proto3" json:"kinds,omitempty"`
}

func (x *StreamEventsRequest) Reset()         { *x = StreamEventsRequest{} }
func (x *StreamEventsRequest) String() string { return messageString(x) }
func (*StreamEventsRequest) ProtoMessage()    {}

func (x *StreamEventsRequest) GetKinds() []string {
	if x == nil {
		return nil
	}
	return x.Kinds
}

type ConnectionStatus struct {
	Connected bool   `protobuf:"varint,1,opt,name=connected,proto3" json:"connected,omitempty"`
	LoggedIn  bool   `protobuf:"varint,2,opt,name=logged_in,json=loggedIn,proto3" json:"logged_in,omitempty"`
	Reason    string `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
}

func (x *ConnectionStatus) Reset()         { *x = ConnectionStatus{} }
func (x *ConnectionStatus) String() string { return messageString(x) }
func (*ConnectionStatus) ProtoMessage()    {}

func (x *ConnectionStatus) GetConnected() bool {
	if x == nil {
		return false
	}
	return x.Connected
}

func (x *ConnectionStatus) GetLoggedIn() bool {
	if x == nil {
		return false
	}
	return x.LoggedIn
}

func (x *ConnectionStatus) GetReason() string {
	if x == nil {
		return ""
	}
	return x.Reason
}

type EventEnvelope struct {
	EventId        string            `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	Kind           string            `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	OccurredAtMs   int64             `protobuf:"varint,3,opt,name=occurred_at_ms,json=occurredAtMs,proto3" json:"occurred_at_ms,omitempty"`
	Connection     *ConnectionStatus `protobuf:"bytes,4,opt,name=connection,proto3" json:"connection,omitempty"`
	Message        *Message          `protobuf:"bytes,5,opt,name=message,proto3" json:"message,omitempty"`
	Chat           *Chat             `protobuf:"bytes,6,opt,name=chat,proto3" json:"chat,omitempty"`
	ReadChatJid    string            `protobuf:"bytes,7,opt,name=read_chat_jid,json=readChatJid,proto3" json:"read_chat_jid,omitempty"`
	ReadMessageIds []string          `protobuf:"bytes,8,rep,name=read_message_ids,json=readMessageIds,proto3" json:"read_message_ids,omitempty"`
}

func (x *EventEnvelope) Reset()         { *x = EventEnvelope{} }
func (x *EventEnvelope) String() string { return messageString(x) }
func (*EventEnvelope) ProtoMessage()    {}

func (x *EventEnvelope) GetEventId() string {
	if x == nil {
		return ""
	}
	return x.EventId
}

func (x *EventEnvelope) GetKind() string {
	if x == nil {
		return ""
	}
	return x.Kind
}

func (x *EventEnvelope) GetOccurredAtMs() int64 {
	if x == nil {
		return 0
	}
	return x.OccurredAtMs
}

func (x *EventEnvelope) GetConnection() *ConnectionStatus {
	if x == nil {
		return nil
	}
	return x.Connection
}

func (x *EventEnvelope) GetMessage() *Message {
	if x == nil {
		return nil
	}
	return x.Message
}

func (x *EventEnvelope) GetChat() *Chat {
	if x == nil {
		return nil
	}
	return x.Chat
}

func (x *EventEnvelope) GetReadChatJid() string {
	if x == nil {
		return ""
	}
	return x.ReadChatJid
}

func (x *EventEnvelope) GetReadMessageIds() []string {
	if x == nil {
		return nil
	}
	return x.ReadMessageIds
}

// messageString formats the dereferenced struct so fmt does not re-enter the
// pointer's String method.
func messageString[T any](x *T) string {
	if x == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%+v", *x)
}
