package store

import (
	"database/sql"
	"time"

	"github.com/joaovbs/wab/internal/domain"
)

func messageArgs(m *domain.Message) []any {
	var (
		reactionTarget, reactionEmoji string
		lat, lng                      float64
		locationName, locationAddr    string
	)
	if m.Reaction != nil {
		reactionTarget = m.Reaction.TargetMsgID
		reactionEmoji = m.Reaction.Emoji
	}
	if m.Location != nil {
		lat = m.Location.Latitude
		lng = m.Location.Longitude
		locationName = m.Location.Name
		locationAddr = m.Location.Address
	}
	return []any{
		m.ChatJID, m.MsgID, m.SenderJID, string(m.Type), m.Text, m.Caption,
		m.MediaURL, m.MimeType, m.FileName, m.QuotedID, reactionTarget, reactionEmoji,
		lat, lng, locationName, locationAddr, m.FromMe, m.Read, m.Timestamp,
		time.Now().UnixMilli(),
	}
}

// CreateMessage inserts a message row. A duplicate (chat_jid, msg_id) is an
// error; callers on the ingestion path use CreateOrIgnoreMessage instead.
func (db *DB) CreateMessage(m *domain.Message) error {
	res, err := db.Exec(`
		INSERT INTO messages (chat_jid, msg_id, sender_jid, message_type, body, caption,
			media_url, mime_type, file_name, quoted_msg_id, reaction_target_id, reaction_emoji,
			latitude, longitude, location_name, location_address, from_me, is_read, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		messageArgs(m)...)
	if err != nil {
		return err
	}
	m.RowID, _ = res.LastInsertId()
	return nil
}

// CreateOrIgnoreMessage inserts a message row, silently skipping if the
// (chat_jid, msg_id) pair already exists. Reports whether a row was inserted,
// so callers can apply unread/summary side effects exactly once.
func (db *DB) CreateOrIgnoreMessage(m *domain.Message) (bool, error) {
	res, err := db.Exec(`
		INSERT INTO messages (chat_jid, msg_id, sender_jid, message_type, body, caption,
			media_url, mime_type, file_name, quoted_msg_id, reaction_target_id, reaction_emoji,
			latitude, longitude, location_name, location_address, from_me, is_read, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(chat_jid, msg_id) DO NOTHING`,
		messageArgs(m)...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		m.RowID, _ = res.LastInsertId()
	}
	return n > 0, nil
}

// UpdateReadStatus marks the given message IDs within a chat as read/unread.
func (db *DB) UpdateReadStatus(chatJID string, msgIDs []string, read bool) error {
	if len(msgIDs) == 0 {
		return nil
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range msgIDs {
		if _, err := tx.Exec(`UPDATE messages SET is_read = ? WHERE chat_jid = ? AND msg_id = ?`,
			read, chatJID, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetMessage returns a single message by its (chatJID, msgID) key, or nil.
func (db *DB) GetMessage(chatJID, msgID string) (*domain.Message, error) {
	row := db.QueryRow(messageSelect+` WHERE chat_jid = ? AND msg_id = ?`, chatJID, msgID)
	m, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages returns messages for a chat, newest first, using keyset
// pagination: beforeID, when set, restricts results to messages older than the
// referenced message.
func (db *DB) ListMessages(chatJID string, limit int, beforeID string) ([]domain.Message, error) {
	if limit <= 0 {
		limit = 50
	}

	beforeTs := time.Now().UnixMilli() + 1
	if beforeID != "" {
		err := db.QueryRow(`SELECT timestamp FROM messages WHERE chat_jid = ? AND msg_id = ?`,
			chatJID, beforeID).Scan(&beforeTs)
		if err != nil && err != sql.ErrNoRows {
			return nil, err
		}
	}

	rows, err := db.Query(messageSelect+`
		WHERE chat_jid = ? AND timestamp < ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, chatJID, beforeTs, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

// MessageCount returns the total number of messages.
func (db *DB) MessageCount() (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&count)
	return count, err
}

const messageSelect = `
	SELECT id, chat_jid, msg_id, sender_jid, message_type, body, caption,
		media_url, mime_type, file_name, quoted_msg_id, reaction_target_id, reaction_emoji,
		latitude, longitude, location_name, location_address, from_me, is_read, timestamp
	FROM messages`

func scanMessage(row rowScanner) (*domain.Message, error) {
	var (
		m                             domain.Message
		msgType                       string
		reactionTarget, reactionEmoji string
		lat, lng                      float64
		locationName, locationAddr    string
	)
	if err := row.Scan(&m.RowID, &m.ChatJID, &m.MsgID, &m.SenderJID, &msgType, &m.Text, &m.Caption,
		&m.MediaURL, &m.MimeType, &m.FileName, &m.QuotedID, &reactionTarget, &reactionEmoji,
		&lat, &lng, &locationName, &locationAddr, &m.FromMe, &m.Read, &m.Timestamp); err != nil {
		return nil, err
	}
	m.Type = domain.MessageType(msgType)
	if reactionTarget != "" || reactionEmoji != "" {
		m.Reaction = &domain.Reaction{
			TargetMsgID: reactionTarget,
			Emoji:       reactionEmoji,
			SenderJID:   m.SenderJID,
			Timestamp:   m.Timestamp,
		}
	}
	if m.Type == domain.MessageLocation {
		m.Location = &domain.Location{
			Latitude:  lat,
			Longitude: lng,
			Name:      locationName,
			Address:   locationAddr,
		}
	}
	return &m, nil
}
