package wa

import (
	"testing"
	"time"

	"go.mau.fi/whatsmeow/proto/waCommon"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/proto/waWeb"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"

	"github.com/joaovbs/wab/internal/domain"
)

func liveEvent(chat, sender types.JID, id string, fromMe bool, msg *waE2E.Message) *events.Message {
	return &events.Message{
		Info: types.MessageInfo{
			ID:        id,
			Timestamp: time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
			MessageSource: types.MessageSource{
				Chat:     chat,
				Sender:   sender,
				IsFromMe: fromMe,
			},
		},
		Message: msg,
	}
}

func TestParseLiveMessageText(t *testing.T) {
	chat := types.JID{User: "5511999990000", Server: "s.whatsapp.net"}
	sender := types.JID{User: "5511999990000", Server: "s.whatsapp.net"}
	evt := liveEvent(chat, sender, "MSG1", false, &waE2E.Message{Conversation: proto.String("hello world")})

	m := ParseLiveMessage(evt)
	if m == nil {
		t.Fatal("ParseLiveMessage returned nil for a text message")
	}
	if m.ChatJID != "5511999990000@s.whatsapp.net" {
		t.Errorf("ChatJID = %q", m.ChatJID)
	}
	if m.MsgID != "MSG1" {
		t.Errorf("MsgID = %q", m.MsgID)
	}
	if m.Type != domain.MessageText || m.Text != "hello world" {
		t.Errorf("Type = %q, Text = %q", m.Type, m.Text)
	}
	if m.FromMe || m.Read {
		t.Error("incoming message must start unread and not from me")
	}
	if m.Timestamp != evt.Info.Timestamp.UnixMilli() {
		t.Errorf("Timestamp = %d, want %d", m.Timestamp, evt.Info.Timestamp.UnixMilli())
	}
}

func TestParseLiveMessageFromMeStartsRead(t *testing.T) {
	chat := types.JID{User: "c", Server: "s.whatsapp.net"}
	evt := liveEvent(chat, chat, "MSG2", true, &waE2E.Message{Conversation: proto.String("mine")})

	m := ParseLiveMessage(evt)
	if m == nil {
		t.Fatal("nil message")
	}
	if !m.FromMe || !m.Read {
		t.Errorf("FromMe = %v, Read = %v, want both true", m.FromMe, m.Read)
	}
}

// Device suffixes must be stripped so live and history paths produce the same
// chat identity.
func TestParseLiveMessageStripsDeviceSuffix(t *testing.T) {
	chat := types.JID{User: "5511999990000", Server: "s.whatsapp.net", Device: 1}
	sender := types.JID{User: "5511999990000", Server: "s.whatsapp.net", Device: 3}
	evt := liveEvent(chat, sender, "MSG3", false, &waE2E.Message{Conversation: proto.String("hi")})

	m := ParseLiveMessage(evt)
	if m.ChatJID != "5511999990000@s.whatsapp.net" {
		t.Errorf("ChatJID = %q, device suffix not stripped", m.ChatJID)
	}
	if m.SenderJID != "5511999990000@s.whatsapp.net" {
		t.Errorf("SenderJID = %q, device suffix not stripped", m.SenderJID)
	}
}

func TestParseLiveMessageUnsupportedVariantDropped(t *testing.T) {
	chat := types.JID{User: "c", Server: "s.whatsapp.net"}
	tests := []struct {
		name string
		msg  *waE2E.Message
	}{
		{"empty", &waE2E.Message{}},
		{"nil", nil},
		{"poll", &waE2E.Message{PollCreationMessage: &waE2E.PollCreationMessage{}}},
		{"contact card", &waE2E.Message{ContactMessage: &waE2E.ContactMessage{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m := ParseLiveMessage(liveEvent(chat, chat, "X", false, tt.msg)); m != nil {
				t.Errorf("ParseLiveMessage() = %+v, want nil", m)
			}
		})
	}
}

func TestParseContentVariants(t *testing.T) {
	tests := []struct {
		name  string
		msg   *waE2E.Message
		check func(t *testing.T, m *domain.Message)
	}{
		{
			"extended text with quote",
			&waE2E.Message{ExtendedTextMessage: &waE2E.ExtendedTextMessage{
				Text:        proto.String("replying"),
				ContextInfo: &waE2E.ContextInfo{StanzaID: proto.String("ORIG1")},
			}},
			func(t *testing.T, m *domain.Message) {
				if m.Type != domain.MessageText || m.Text != "replying" {
					t.Errorf("Type = %q, Text = %q", m.Type, m.Text)
				}
				if m.QuotedID != "ORIG1" {
					t.Errorf("QuotedID = %q, want ORIG1", m.QuotedID)
				}
			},
		},
		{
			"image with caption",
			&waE2E.Message{ImageMessage: &waE2E.ImageMessage{
				Caption:  proto.String("sunset"),
				Mimetype: proto.String("image/jpeg"),
				URL:      proto.String("https://media.example/abc"),
			}},
			func(t *testing.T, m *domain.Message) {
				if m.Type != domain.MessageImage {
					t.Errorf("Type = %q, want image", m.Type)
				}
				if m.Caption != "sunset" || m.MimeType != "image/jpeg" || m.MediaURL == "" {
					t.Errorf("media fields = %q %q %q", m.Caption, m.MimeType, m.MediaURL)
				}
			},
		},
		{
			"document",
			&waE2E.Message{DocumentMessage: &waE2E.DocumentMessage{
				FileName: proto.String("report.pdf"),
				Mimetype: proto.String("application/pdf"),
			}},
			func(t *testing.T, m *domain.Message) {
				if m.Type != domain.MessageDocument || m.FileName != "report.pdf" {
					t.Errorf("Type = %q, FileName = %q", m.Type, m.FileName)
				}
			},
		},
		{
			"reaction",
			&waE2E.Message{ReactionMessage: &waE2E.ReactionMessage{
				Key:  &waCommon.MessageKey{ID: proto.String("TGT1")},
				Text: proto.String("👍"),
			}},
			func(t *testing.T, m *domain.Message) {
				if m.Type != domain.MessageReaction {
					t.Fatalf("Type = %q, want reaction", m.Type)
				}
				if m.Reaction == nil || m.Reaction.TargetMsgID != "TGT1" || m.Reaction.Emoji != "👍" {
					t.Errorf("Reaction = %+v", m.Reaction)
				}
			},
		},
		{
			"location",
			&waE2E.Message{LocationMessage: &waE2E.LocationMessage{
				DegreesLatitude:  proto.Float64(-23.55),
				DegreesLongitude: proto.Float64(-46.63),
				Name:             proto.String("Sao Paulo"),
			}},
			func(t *testing.T, m *domain.Message) {
				if m.Type != domain.MessageLocation {
					t.Fatalf("Type = %q, want location", m.Type)
				}
				if m.Location == nil || m.Location.Latitude != -23.55 || m.Location.Name != "Sao Paulo" {
					t.Errorf("Location = %+v", m.Location)
				}
			},
		},
		{
			"ephemeral wrapper unwrapped",
			&waE2E.Message{EphemeralMessage: &waE2E.FutureProofMessage{
				Message: &waE2E.Message{Conversation: proto.String("disappearing")},
			}},
			func(t *testing.T, m *domain.Message) {
				if m.Type != domain.MessageText || m.Text != "disappearing" {
					t.Errorf("Type = %q, Text = %q", m.Type, m.Text)
				}
			},
		},
	}

	chat := types.JID{User: "c", Server: "s.whatsapp.net"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseLiveMessage(liveEvent(chat, chat, "M", false, tt.msg))
			if m == nil {
				t.Fatal("ParseLiveMessage returned nil")
			}
			tt.check(t, m)
		})
	}
}

func TestParseHistoryMessage(t *testing.T) {
	ts := uint64(1760000000)
	wmsg := &waWeb.WebMessageInfo{
		Key: &waCommon.MessageKey{
			ID:          proto.String("H1"),
			FromMe:      proto.Bool(false),
			Participant: proto.String("5511888880000:2@s.whatsapp.net"),
		},
		MessageTimestamp: &ts,
		Message:          &waE2E.Message{Conversation: proto.String("old news")},
	}

	m := ParseHistoryMessage("123@g.us", "me@s.whatsapp.net", wmsg)
	if m == nil {
		t.Fatal("nil message")
	}
	if m.ChatJID != "123@g.us" {
		t.Errorf("ChatJID = %q", m.ChatJID)
	}
	if m.SenderJID != "5511888880000@s.whatsapp.net" {
		t.Errorf("SenderJID = %q, device suffix not stripped", m.SenderJID)
	}
	if m.Timestamp != int64(ts)*1000 {
		t.Errorf("Timestamp = %d, want %d", m.Timestamp, int64(ts)*1000)
	}
}

func TestParseHistoryMessageOwnSender(t *testing.T) {
	ts := uint64(1760000000)
	wmsg := &waWeb.WebMessageInfo{
		Key: &waCommon.MessageKey{
			ID:     proto.String("H2"),
			FromMe: proto.Bool(true),
		},
		MessageTimestamp: &ts,
		Message:          &waE2E.Message{Conversation: proto.String("from me")},
	}

	m := ParseHistoryMessage("friend@s.whatsapp.net", "me@s.whatsapp.net", wmsg)
	if m == nil {
		t.Fatal("nil message")
	}
	if !m.FromMe {
		t.Error("FromMe = false, want true")
	}
	if m.SenderJID != "me@s.whatsapp.net" {
		t.Errorf("SenderJID = %q, want own JID", m.SenderJID)
	}
}

func TestParseHistoryMessagePrivateSenderFallsBackToChat(t *testing.T) {
	ts := uint64(1760000000)
	wmsg := &waWeb.WebMessageInfo{
		Key: &waCommon.MessageKey{
			ID:     proto.String("H3"),
			FromMe: proto.Bool(false),
		},
		MessageTimestamp: &ts,
		Message:          &waE2E.Message{Conversation: proto.String("dm")},
	}

	m := ParseHistoryMessage("friend@s.whatsapp.net", "me@s.whatsapp.net", wmsg)
	if m.SenderJID != "friend@s.whatsapp.net" {
		t.Errorf("SenderJID = %q, want chat JID for private history", m.SenderJID)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		msg  *domain.Message
		want string
	}{
		{"text", &domain.Message{Type: domain.MessageText, Text: "hi"}, "hi"},
		{"image no caption", &domain.Message{Type: domain.MessageImage}, "[image]"},
		{"image caption", &domain.Message{Type: domain.MessageImage, Caption: "look"}, "look"},
		{"audio", &domain.Message{Type: domain.MessageAudio}, "[audio]"},
		{"document named", &domain.Message{Type: domain.MessageDocument, FileName: "a.pdf"}, "[document] a.pdf"},
		{"sticker", &domain.Message{Type: domain.MessageSticker}, "[sticker]"},
		{"reaction", &domain.Message{Type: domain.MessageReaction, Reaction: &domain.Reaction{Emoji: "🔥"}}, "[reaction] 🔥"},
		{"location named", &domain.Message{Type: domain.MessageLocation, Location: &domain.Location{Name: "Home"}}, "[location] Home"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.msg); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSenderLabel(t *testing.T) {
	tests := []struct {
		name     string
		msg      *domain.Message
		pushName string
		want     string
	}{
		{"from me", &domain.Message{FromMe: true, SenderJID: "x@s.whatsapp.net"}, "Alice", "me"},
		{"push name", &domain.Message{SenderJID: "5511@s.whatsapp.net"}, "Alice", "Alice"},
		{"bare user part", &domain.Message{SenderJID: "5511@s.whatsapp.net"}, "", "5511"},
		{"unparseable", &domain.Message{SenderJID: "garbage"}, "", "garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SenderLabel(tt.msg, tt.pushName); got != tt.want {
				t.Errorf("SenderLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeJID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5511999990000@s.whatsapp.net", "5511999990000@s.whatsapp.net"},
		{"5511999990000:0@s.whatsapp.net", "5511999990000@s.whatsapp.net"},
		{"5511999990000:7@s.whatsapp.net", "5511999990000@s.whatsapp.net"},
		{"120363123456@g.us", "120363123456@g.us"},
		{"", ""},
		{"invalid", "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeJID(tt.input); got != tt.want {
				t.Errorf("normalizeJID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
