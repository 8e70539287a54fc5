// Package api implements the daemon's gRPC services on top of the store, the
// event bus and the live session.
package api

import (
	"github.com/google/uuid"
	"github.com/joaovbs/wab/internal/domain"
	wabv1 "github.com/joaovbs/wab/pb/wabv1"
)

func chatToProto(c *domain.Chat) *wabv1.Chat {
	return &wabv1.Chat{
		Jid:               c.JID,
		Name:              c.Name,
		ChatType:          string(c.Type),
		LastMessageText:   c.LastMessageText,
		LastMessageSender: c.LastMessageSender,
		LastMessageAtMs:   c.LastMessageAt,
		UnreadCount:       int64(c.UnreadCount),
		Archived:          c.Archived,
		Muted:             c.Muted,
	}
}

func messageToProto(m *domain.Message) *wabv1.Message {
	pb := &wabv1.Message{
		ChatJid:     m.ChatJID,
		MsgId:       m.MsgID,
		SenderJid:   m.SenderJID,
		MessageType: string(m.Type),
		Text:        m.Text,
		Caption:     m.Caption,
		MediaUrl:    m.MediaURL,
		MimeType:    m.MimeType,
		FileName:    m.FileName,
		QuotedMsgId: m.QuotedID,
		FromMe:      m.FromMe,
		Read:        m.Read,
		TimestampMs: m.Timestamp,
	}
	if m.Reaction != nil {
		pb.Reaction = &wabv1.Reaction{
			TargetMsgId: m.Reaction.TargetMsgID,
			Emoji:       m.Reaction.Emoji,
			SenderJid:   m.Reaction.SenderJID,
			TimestampMs: m.Reaction.Timestamp,
		}
	}
	if m.Location != nil {
		pb.Location = &wabv1.Location{
			Latitude:  m.Location.Latitude,
			Longitude: m.Location.Longitude,
			Name:      m.Location.Name,
			Address:   m.Location.Address,
		}
	}
	return pb
}

// eventToEnvelope wraps a domain event for the wire. Returns nil for payload
// types the stream does not carry.
func eventToEnvelope(evt domain.Event) *wabv1.EventEnvelope {
	env := &wabv1.EventEnvelope{
		EventId:      uuid.New().String(),
		Kind:         string(evt.Kind),
		OccurredAtMs: evt.Timestamp.UnixMilli(),
	}
	switch p := evt.Payload.(type) {
	case domain.ConnectionStatus:
		env.Connection = &wabv1.ConnectionStatus{
			Connected: p.Connected,
			LoggedIn:  p.LoggedIn,
			Reason:    p.Reason,
		}
	case domain.MessageEvent:
		if p.Message != nil {
			env.Message = messageToProto(p.Message)
		}
	case domain.ChatUpdated:
		if p.Chat != nil {
			env.Chat = chatToProto(p.Chat)
		}
	case domain.MessageRead:
		env.ReadChatJid = p.ChatJID
		env.ReadMessageIds = p.MessageIDs
	default:
		return nil
	}
	return env
}
