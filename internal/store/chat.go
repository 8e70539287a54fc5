package store

import (
	"database/sql"
	"time"

	"github.com/joaovbs/wab/internal/domain"
)

// UpsertChat inserts or fully updates a chat record, including metadata.
// Only the bootstrap history sync and explicit chat events may call this;
// live message ingestion uses EnsureChat + UpdateLastMessage instead.
func (db *DB) UpsertChat(c *domain.Chat) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO chats (jid, name, chat_type, last_message_text, last_message_sender, last_message_at, unread_count, archived, muted, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(jid) DO UPDATE SET
			name = excluded.name,
			chat_type = excluded.chat_type,
			last_message_text = excluded.last_message_text,
			last_message_sender = excluded.last_message_sender,
			last_message_at = excluded.last_message_at,
			unread_count = excluded.unread_count,
			archived = excluded.archived,
			muted = excluded.muted,
			updated_at = excluded.updated_at`,
		c.JID, c.Name, string(c.Type), c.LastMessageText, c.LastMessageSender,
		c.LastMessageAt, c.UnreadCount, c.Archived, c.Muted, now)
	return err
}

// EnsureChat creates a minimal chat stub if none exists. Existing rows are
// left untouched so incremental syncs never clobber live chat metadata.
func (db *DB) EnsureChat(jid string, chatType domain.ChatType, name string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO chats (jid, name, chat_type, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(jid) DO NOTHING`,
		jid, name, string(chatType), now)
	return err
}

// UpdateLastMessage refreshes the chat's last-message summary fields.
func (db *DB) UpdateLastMessage(jid, text, sender string, at int64) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		UPDATE chats SET last_message_text = ?, last_message_sender = ?, last_message_at = ?, updated_at = ?
		WHERE jid = ?`,
		text, sender, at, now, jid)
	return err
}

// IncrementUnreadCount adds one to the chat's unread counter.
func (db *DB) IncrementUnreadCount(jid string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE chats SET unread_count = unread_count + 1, updated_at = ? WHERE jid = ?`, now, jid)
	return err
}

// SetUnreadCount sets the chat's unread counter, clamped to zero.
func (db *DB) SetUnreadCount(jid string, n int) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE chats SET unread_count = MAX(0, ?), updated_at = ? WHERE jid = ?`, n, now, jid)
	return err
}

// SetArchived sets or clears the chat's archived flag.
func (db *DB) SetArchived(jid string, archived bool) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE chats SET archived = ?, updated_at = ? WHERE jid = ?`, archived, now, jid)
	return err
}

// SetMuted sets or clears the chat's muted flag.
func (db *DB) SetMuted(jid string, muted bool) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE chats SET muted = ?, updated_at = ? WHERE jid = ?`, muted, now, jid)
	return err
}

const chatColumns = `
	c.jid,
	COALESCE(NULLIF(c.name,''), NULLIF(ct.push_name,''), NULLIF(ct.name,''), c.jid) AS display_name,
	c.chat_type, c.last_message_text, c.last_message_sender, c.last_message_at,
	c.unread_count, c.archived, c.muted`

// ListChats returns chats ordered by most recent activity. Display names fall
// back through contact push name and contact name to the bare JID.
func (db *DB) ListChats(limit, offset int) ([]domain.Chat, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT `+chatColumns+`
		FROM chats c
		LEFT JOIN contacts ct ON c.jid = ct.jid
		ORDER BY c.last_message_at DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var chats []domain.Chat
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, *c)
	}
	return chats, rows.Err()
}

// GetChat returns a single chat by JID, or nil if absent.
func (db *DB) GetChat(jid string) (*domain.Chat, error) {
	row := db.QueryRow(`
		SELECT `+chatColumns+`
		FROM chats c
		LEFT JOIN contacts ct ON c.jid = ct.jid
		WHERE c.jid = ?`, jid)
	c, err := scanChat(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ChatCount returns the total number of chats.
func (db *DB) ChatCount() (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM chats`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChat(row rowScanner) (*domain.Chat, error) {
	var c domain.Chat
	var chatType string
	if err := row.Scan(&c.JID, &c.Name, &chatType, &c.LastMessageText, &c.LastMessageSender,
		&c.LastMessageAt, &c.UnreadCount, &c.Archived, &c.Muted); err != nil {
		return nil, err
	}
	c.Type = domain.ChatType(chatType)
	return &c, nil
}
