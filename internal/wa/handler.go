package wa

import (
	"context"
	"sync"
	"time"

	"go.mau.fi/whatsmeow/proto/waHistorySync"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"

	"github.com/joaovbs/wab/internal/bus"
	"github.com/joaovbs/wab/internal/domain"
	"github.com/joaovbs/wab/internal/status"
	"github.com/joaovbs/wab/internal/store"
)

const eventQueueSize = 512

// Handler normalizes raw whatsmeow events into store writes and domain bus
// events. All processing happens on a single consumer goroutine, so database
// writes for a chat are strictly ordered. The whatsmeow callback only
// enqueues; a full queue blocks the provider, which is the backpressure.
type Handler struct {
	session *Session
	db      *store.DB
	bus     *bus.Bus
	machine *status.Machine
	logger  *zap.Logger

	queue    chan any
	stopped  chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewHandler creates the event handler. session may be nil in tests that
// drive dispatch directly.
func NewHandler(session *Session, db *store.DB, b *bus.Bus, machine *status.Machine, logger *zap.Logger) *Handler {
	return &Handler{
		session: session,
		db:      db,
		bus:     b,
		machine: machine,
		logger:  logger,
		queue:   make(chan any, eventQueueSize),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Enqueue hands a raw event to the consumer goroutine. Blocks when the queue
// is full; returns immediately after Stop.
func (h *Handler) Enqueue(evt any) {
	select {
	case h.queue <- evt:
	case <-h.stopped:
	}
}

// Start launches the consumer goroutine.
func (h *Handler) Start(ctx context.Context) {
	go func() {
		defer close(h.done)
		for {
			select {
			case evt := <-h.queue:
				h.dispatch(evt)
			case <-h.stopped:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the consumer and waits for the in-flight event to finish.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() { close(h.stopped) })
	<-h.done
}

func (h *Handler) dispatch(rawEvt any) {
	switch evt := rawEvt.(type) {
	case *events.Connected:
		h.logger.Info("WhatsApp connected")
		if h.session != nil {
			h.session.setConnected(true)
		}
		_ = h.machine.Transition(status.Connected)
		h.publish(domain.KindConnectionStatus, domain.ConnectionStatus{
			Connected: true,
			LoggedIn:  h.loggedIn(),
		})
	case *events.Disconnected:
		h.logger.Warn("WhatsApp disconnected")
		if h.session != nil {
			h.session.setConnected(false)
		}
		_ = h.machine.Transition(status.Disconnected)
		h.publish(domain.KindConnectionStatus, domain.ConnectionStatus{
			Connected: false,
			LoggedIn:  h.loggedIn(),
			Reason:    "disconnected",
		})
	case *events.LoggedOut:
		h.logger.Warn("WhatsApp logged out", zap.String("reason", evt.Reason.String()))
		if h.session != nil {
			h.session.setConnected(false)
		}
		_ = h.machine.Transition(status.LoggedOut)
		h.publish(domain.KindConnectionStatus, domain.ConnectionStatus{
			Reason: evt.Reason.String(),
		})
	case *events.PairSuccess:
		h.logger.Info("device paired", zap.String("jid", evt.ID.ToNonAD().String()))
	case *events.Message:
		h.handleMessage(evt)
	case *events.Receipt:
		h.handleReceipt(evt)
	case *events.HistorySync:
		h.handleHistorySync(evt)
	case *events.PushName:
		h.upsertContact(&domain.Contact{
			JID:      evt.JID.ToNonAD().String(),
			PushName: evt.NewPushName,
		})
	case *events.Contact:
		h.upsertContact(&domain.Contact{
			JID:  evt.JID.ToNonAD().String(),
			Name: evt.Action.GetFullName(),
		})
	case *events.MarkChatAsRead:
		// Only the read=true direction clears the counter. Marking unread
		// from the phone is not mirrored.
		if !evt.Action.GetRead() {
			return
		}
		jid := evt.JID.ToNonAD().String()
		if err := h.db.SetUnreadCount(jid, 0); err != nil {
			h.logger.Error("failed to clear unread count", zap.Error(err), zap.String("chat", jid))
			return
		}
		h.publishChatUpdated(jid)
	case *events.Archive:
		jid := evt.JID.ToNonAD().String()
		if err := h.db.SetArchived(jid, evt.Action.GetArchived()); err != nil {
			h.logger.Error("failed to set archived flag", zap.Error(err), zap.String("chat", jid))
			return
		}
		h.publishChatUpdated(jid)
	case *events.Mute:
		jid := evt.JID.ToNonAD().String()
		if err := h.db.SetMuted(jid, evt.Action.GetMuted()); err != nil {
			h.logger.Error("failed to set muted flag", zap.Error(err), zap.String("chat", jid))
			return
		}
		h.publishChatUpdated(jid)
	}
}

func (h *Handler) handleMessage(evt *events.Message) {
	parsed := ParseLiveMessage(evt)
	if parsed == nil {
		h.logger.Debug("dropping unsupported message variant", zap.String("msg_id", evt.Info.ID))
		return
	}

	if err := h.db.EnsureChat(parsed.ChatJID, chatTypeOf(parsed.ChatJID), ""); err != nil {
		h.logger.Error("failed to ensure chat", zap.Error(err), zap.String("chat", parsed.ChatJID))
		return
	}
	inserted, err := h.db.CreateOrIgnoreMessage(parsed)
	if err != nil {
		h.logger.Error("failed to store message", zap.Error(err),
			zap.String("chat", parsed.ChatJID), zap.String("msg_id", parsed.MsgID))
		return
	}
	if !inserted {
		// Duplicate delivery (retry or overlapping history batch).
		return
	}

	// Push names ride along on live messages; cache them opportunistically.
	if !parsed.FromMe && evt.Info.PushName != "" {
		h.upsertContact(&domain.Contact{JID: parsed.SenderJID, PushName: evt.Info.PushName})
	}

	if err := h.db.UpdateLastMessage(parsed.ChatJID, Preview(parsed), SenderLabel(parsed, evt.Info.PushName), parsed.Timestamp); err != nil {
		h.logger.Error("failed to update chat summary", zap.Error(err), zap.String("chat", parsed.ChatJID))
	}
	if !parsed.FromMe {
		if err := h.db.IncrementUnreadCount(parsed.ChatJID); err != nil {
			h.logger.Error("failed to bump unread count", zap.Error(err), zap.String("chat", parsed.ChatJID))
		}
	}

	kind := domain.KindMessageReceived
	if parsed.FromMe {
		// Echo of a message sent from another linked device.
		kind = domain.KindMessageSent
	}
	h.publish(kind, domain.MessageEvent{Message: parsed})
}

func (h *Handler) handleReceipt(evt *events.Receipt) {
	if evt.Type != types.ReceiptTypeRead && evt.Type != types.ReceiptTypeReadSelf {
		return
	}
	chatJID := evt.Chat.ToNonAD().String()
	ids := make([]string, len(evt.MessageIDs))
	for i, id := range evt.MessageIDs {
		ids[i] = string(id)
	}
	if err := h.db.UpdateReadStatus(chatJID, ids, true); err != nil {
		h.logger.Error("failed to mark messages read", zap.Error(err), zap.String("chat", chatJID))
		return
	}
	h.publish(domain.KindMessageRead, domain.MessageRead{ChatJID: chatJID, MessageIDs: ids})
}

func (h *Handler) handleHistorySync(evt *events.HistorySync) {
	data := evt.Data
	if data == nil {
		return
	}

	if data.GetSyncType() == waHistorySync.HistorySync_PUSH_NAME {
		var contacts []domain.Contact
		for _, pn := range data.GetPushnames() {
			contacts = append(contacts, domain.Contact{
				JID:      normalizeJID(pn.GetID()),
				PushName: pn.GetPushname(),
			})
		}
		if len(contacts) == 0 {
			return
		}
		if err := h.db.BulkUpsertContacts(contacts); err != nil {
			h.logger.Error("failed to store push names", zap.Error(err), zap.Int("count", len(contacts)))
			return
		}
		h.logger.Info("push name batch ingested", zap.Int("contacts", len(contacts)))
		return
	}

	// Only the initial bootstrap batch carries authoritative chat metadata
	// (unread counts, archive state). Incremental batches get chat stubs so
	// they never clobber live state.
	bootstrap := data.GetSyncType() == waHistorySync.HistorySync_INITIAL_BOOTSTRAP

	var ownJID string
	if h.session != nil {
		ownJID = h.session.OwnJID()
	}

	chats, msgs := 0, 0
	for _, conv := range data.GetConversations() {
		chatJID := normalizeJID(conv.GetID())
		if chatJID == "" {
			continue
		}

		var parsed []*domain.Message
		for _, hm := range conv.GetMessages() {
			m := ParseHistoryMessage(chatJID, ownJID, hm.GetMessage())
			if m == nil {
				continue
			}
			// History is the past; it never contributes to unread counters.
			m.Read = true
			parsed = append(parsed, m)
		}

		if bootstrap {
			c := &domain.Chat{
				JID:         chatJID,
				Name:        conv.GetName(),
				Type:        chatTypeOf(chatJID),
				UnreadCount: int(conv.GetUnreadCount()),
				Archived:    conv.GetArchived(),
				Muted:       conv.GetMuteEndTime() > uint64(time.Now().Unix()),
			}
			if newest := newestMessage(parsed); newest != nil {
				c.LastMessageText = Preview(newest)
				c.LastMessageSender = SenderLabel(newest, "")
				c.LastMessageAt = newest.Timestamp
			}
			if err := h.db.UpsertChat(c); err != nil {
				h.logger.Error("failed to upsert chat from bootstrap", zap.Error(err), zap.String("chat", chatJID))
				continue
			}
		} else {
			if err := h.db.EnsureChat(chatJID, chatTypeOf(chatJID), conv.GetName()); err != nil {
				h.logger.Error("failed to ensure chat from history", zap.Error(err), zap.String("chat", chatJID))
				continue
			}
		}
		chats++

		for _, m := range parsed {
			inserted, err := h.db.CreateOrIgnoreMessage(m)
			if err != nil {
				h.logger.Error("failed to store history message", zap.Error(err),
					zap.String("chat", chatJID), zap.String("msg_id", m.MsgID))
				continue
			}
			if inserted {
				msgs++
			}
		}
	}

	h.logger.Info("history batch ingested",
		zap.String("sync_type", data.GetSyncType().String()),
		zap.Int("chats", chats), zap.Int("messages", msgs))

	if bootstrap {
		if err := h.db.SetSyncState("bootstrap_completed_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
			h.logger.Error("failed to record bootstrap completion", zap.Error(err))
		}
	}
}

func (h *Handler) upsertContact(c *domain.Contact) {
	if err := h.db.UpsertContact(c); err != nil {
		h.logger.Error("failed to upsert contact", zap.Error(err), zap.String("jid", c.JID))
	}
}

func (h *Handler) publish(kind domain.EventKind, payload any) {
	h.bus.Publish(domain.Event{Kind: kind, Timestamp: time.Now(), Payload: payload})
}

func (h *Handler) publishChatUpdated(jid string) {
	c, err := h.db.GetChat(jid)
	if err != nil || c == nil {
		return
	}
	h.publish(domain.KindChatUpdated, domain.ChatUpdated{Chat: c})
}

func (h *Handler) loggedIn() bool {
	return h.session != nil && h.session.IsLoggedIn()
}

func chatTypeOf(jid string) domain.ChatType {
	parsed, err := domain.ParseJID(jid)
	if err == nil && parsed.IsGroup() {
		return domain.ChatGroup
	}
	return domain.ChatPrivate
}

func newestMessage(msgs []*domain.Message) *domain.Message {
	var newest *domain.Message
	for _, m := range msgs {
		if newest == nil || m.Timestamp > newest.Timestamp {
			newest = m
		}
	}
	return newest
}
