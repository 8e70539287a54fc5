package wa

import (
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/proto/waWeb"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"

	"github.com/joaovbs/wab/internal/domain"
)

// ParseLiveMessage normalizes a live whatsmeow message event into a domain
// message. Returns nil when the content is a variant this daemon does not
// mirror (polls, calls, protocol messages); such events are dropped.
func ParseLiveMessage(evt *events.Message) *domain.Message {
	m := &domain.Message{
		ChatJID:   evt.Info.Chat.ToNonAD().String(),
		MsgID:     evt.Info.ID,
		SenderJID: evt.Info.Sender.ToNonAD().String(),
		FromMe:    evt.Info.IsFromMe,
		Read:      evt.Info.IsFromMe,
		Timestamp: evt.Info.Timestamp.UnixMilli(),
	}
	if !parseContent(evt.Message, m) {
		return nil
	}
	return m
}

// ParseHistoryMessage normalizes one history sync message. chatJID is the
// conversation the batch belongs to; ownJID resolves the sender of own
// messages, whose key carries no participant.
func ParseHistoryMessage(chatJID, ownJID string, wmsg *waWeb.WebMessageInfo) *domain.Message {
	if wmsg == nil || wmsg.GetMessage() == nil {
		return nil
	}
	key := wmsg.GetKey()
	sender := normalizeJID(key.GetParticipant())
	if key.GetFromMe() {
		sender = ownJID
	} else if sender == "" {
		sender = chatJID
	}
	m := &domain.Message{
		ChatJID:   chatJID,
		MsgID:     key.GetID(),
		SenderJID: sender,
		FromMe:    key.GetFromMe(),
		Timestamp: int64(wmsg.GetMessageTimestamp()) * 1000,
	}
	if !parseContent(wmsg.GetMessage(), m) {
		return nil
	}
	return m
}

// parseContent fills m from the populated wire variant. Returns false for
// variants outside the supported set.
func parseContent(msg *waE2E.Message, m *domain.Message) bool {
	msg = unwrap(msg)
	if msg == nil {
		return false
	}

	switch {
	case msg.GetConversation() != "":
		m.Type = domain.MessageText
		m.Text = msg.GetConversation()
	case msg.GetExtendedTextMessage() != nil:
		ext := msg.GetExtendedTextMessage()
		m.Type = domain.MessageText
		m.Text = ext.GetText()
		m.QuotedID = ext.GetContextInfo().GetStanzaID()
	case msg.GetImageMessage() != nil:
		img := msg.GetImageMessage()
		m.Type = domain.MessageImage
		m.Caption = img.GetCaption()
		m.MimeType = img.GetMimetype()
		m.MediaURL = img.GetURL()
		m.QuotedID = img.GetContextInfo().GetStanzaID()
	case msg.GetVideoMessage() != nil:
		vid := msg.GetVideoMessage()
		m.Type = domain.MessageVideo
		m.Caption = vid.GetCaption()
		m.MimeType = vid.GetMimetype()
		m.MediaURL = vid.GetURL()
		m.QuotedID = vid.GetContextInfo().GetStanzaID()
	case msg.GetAudioMessage() != nil:
		aud := msg.GetAudioMessage()
		m.Type = domain.MessageAudio
		m.MimeType = aud.GetMimetype()
		m.MediaURL = aud.GetURL()
	case msg.GetDocumentMessage() != nil:
		doc := msg.GetDocumentMessage()
		m.Type = domain.MessageDocument
		m.Caption = doc.GetCaption()
		m.MimeType = doc.GetMimetype()
		m.MediaURL = doc.GetURL()
		m.FileName = doc.GetFileName()
	case msg.GetStickerMessage() != nil:
		stk := msg.GetStickerMessage()
		m.Type = domain.MessageSticker
		m.MimeType = stk.GetMimetype()
		m.MediaURL = stk.GetURL()
	case msg.GetReactionMessage() != nil:
		react := msg.GetReactionMessage()
		m.Type = domain.MessageReaction
		m.Reaction = &domain.Reaction{
			TargetMsgID: react.GetKey().GetID(),
			Emoji:       react.GetText(),
			SenderJID:   m.SenderJID,
			Timestamp:   m.Timestamp,
		}
	case msg.GetLocationMessage() != nil:
		loc := msg.GetLocationMessage()
		m.Type = domain.MessageLocation
		m.Location = &domain.Location{
			Latitude:  loc.GetDegreesLatitude(),
			Longitude: loc.GetDegreesLongitude(),
			Name:      loc.GetName(),
			Address:   loc.GetAddress(),
		}
	default:
		return false
	}
	return true
}

// unwrap peels ephemeral and view-once envelopes down to the inner content.
func unwrap(msg *waE2E.Message) *waE2E.Message {
	for msg != nil {
		switch {
		case msg.GetEphemeralMessage().GetMessage() != nil:
			msg = msg.GetEphemeralMessage().GetMessage()
		case msg.GetViewOnceMessage().GetMessage() != nil:
			msg = msg.GetViewOnceMessage().GetMessage()
		case msg.GetViewOnceMessageV2().GetMessage() != nil:
			msg = msg.GetViewOnceMessageV2().GetMessage()
		default:
			return msg
		}
	}
	return nil
}

// Preview renders a one-line chat list preview for a message.
func Preview(m *domain.Message) string {
	switch m.Type {
	case domain.MessageText:
		return m.Text
	case domain.MessageImage:
		if m.Caption != "" {
			return m.Caption
		}
		return "[image]"
	case domain.MessageVideo:
		if m.Caption != "" {
			return m.Caption
		}
		return "[video]"
	case domain.MessageAudio:
		return "[audio]"
	case domain.MessageDocument:
		if m.FileName != "" {
			return "[document] " + m.FileName
		}
		return "[document]"
	case domain.MessageSticker:
		return "[sticker]"
	case domain.MessageReaction:
		if m.Reaction != nil {
			return "[reaction] " + m.Reaction.Emoji
		}
		return "[reaction]"
	case domain.MessageLocation:
		if m.Location != nil && m.Location.Name != "" {
			return "[location] " + m.Location.Name
		}
		return "[location]"
	default:
		return ""
	}
}

// SenderLabel resolves the display label for a message sender.
func SenderLabel(m *domain.Message, pushName string) string {
	if m.FromMe {
		return "me"
	}
	if pushName != "" {
		return pushName
	}
	jid, err := domain.ParseJID(m.SenderJID)
	if err != nil {
		return m.SenderJID
	}
	return jid.User
}

// normalizeJID strips device suffixes from a raw JID string. Invalid input
// passes through unchanged so ingestion never drops a message over a JID
// format surprise.
func normalizeJID(raw string) string {
	if raw == "" {
		return ""
	}
	jid, err := types.ParseJID(raw)
	if err != nil {
		return raw
	}
	return jid.ToNonAD().String()
}
