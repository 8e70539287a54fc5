// Package domain holds the entity and event types shared by the store, the
// event bus, the session layer and the RPC facade.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ChatType distinguishes direct conversations from groups.
type ChatType string

const (
	ChatPrivate ChatType = "private"
	ChatGroup   ChatType = "group"
)

// MessageType enumerates the supported message payload variants.
type MessageType string

const (
	MessageText     MessageType = "text"
	MessageImage    MessageType = "image"
	MessageVideo    MessageType = "video"
	MessageAudio    MessageType = "audio"
	MessageDocument MessageType = "document"
	MessageSticker  MessageType = "sticker"
	MessageReaction MessageType = "reaction"
	MessageLocation MessageType = "location"
)

// GroupServer is the JID server used by group chats.
const GroupServer = "g.us"

// JID identifies a network endpoint: a contact, a group, or a specific linked
// device. Device 0 addresses the primary endpoint of an entity.
type JID struct {
	User   string
	Server string
	Device uint16
}

// ParseJID parses "user@server" or "user.device@server".
func ParseJID(s string) (JID, error) {
	user, server, ok := strings.Cut(s, "@")
	if !ok || server == "" {
		return JID{}, fmt.Errorf("invalid JID %q", s)
	}
	var device uint16
	if u, d, hasDevice := strings.Cut(user, "."); hasDevice {
		n, err := strconv.ParseUint(d, 10, 16)
		if err != nil {
			return JID{}, fmt.Errorf("invalid JID device in %q", s)
		}
		user = u
		device = uint16(n)
	}
	if user == "" {
		return JID{}, fmt.Errorf("invalid JID %q", s)
	}
	return JID{User: user, Server: server, Device: device}, nil
}

func (j JID) String() string {
	if j.Device > 0 {
		return j.User + "." + strconv.FormatUint(uint64(j.Device), 10) + "@" + j.Server
	}
	return j.User + "@" + j.Server
}

// Primary returns the device-0 address of the same entity.
func (j JID) Primary() JID {
	j.Device = 0
	return j
}

func (j JID) IsGroup() bool {
	return j.Server == GroupServer
}

// Chat is a mirrored conversation. Timestamps are Unix milliseconds.
type Chat struct {
	JID               string
	Name              string
	Type              ChatType
	LastMessageText   string
	LastMessageSender string
	LastMessageAt     int64
	UnreadCount       int
	Archived          bool
	Muted             bool
}

// Message is a mirrored message, unique per (ChatJID, MsgID). RowID is the
// store-assigned surrogate key and is zero until persisted.
type Message struct {
	RowID     int64
	ChatJID   string
	MsgID     string
	SenderJID string
	Type      MessageType
	Text      string
	Caption   string
	MediaURL  string
	MimeType  string
	FileName  string
	QuotedID  string
	Reaction  *Reaction
	Location  *Location
	FromMe    bool
	Read      bool
	Timestamp int64
}

// Reaction rides on a synthetic Message of type reaction; it is never merged
// into the target message row.
type Reaction struct {
	TargetMsgID string
	Emoji       string
	SenderJID   string
	Timestamp   int64
}

// Location rides on a Message of type location.
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
	Address   string
}

// Contact mirrors the transport provider's contact directory. It is a
// read-through cache, not authoritative truth.
type Contact struct {
	JID          string
	Name         string
	PushName     string
	BusinessName string
	PhoneNumber  string
}
