package store

import "github.com/joaovbs/wab/internal/domain"

// SearchResult holds a message with a search snippet.
type SearchResult struct {
	Message domain.Message
	Snippet string
}

// SearchMessages performs a full-text search on message bodies.
func (db *DB) SearchMessages(query string, chatJID string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 50
	}

	q := `
		SELECT m.id, m.chat_jid, m.msg_id, m.sender_jid, m.message_type, m.body, m.caption,
			m.media_url, m.mime_type, m.file_name, m.quoted_msg_id, m.reaction_target_id, m.reaction_emoji,
			m.latitude, m.longitude, m.location_name, m.location_address, m.from_me, m.is_read, m.timestamp,
			snippet(messages_fts, 0, '<<', '>>', '...', 32)
		FROM messages_fts f
		JOIN messages m ON m.id = f.rowid
		WHERE messages_fts MATCH ?`

	args := []any{query}
	if chatJID != "" {
		q += " AND m.chat_jid = ?"
		args = append(args, chatJID)
	}
	q += " ORDER BY rank LIMIT ?"
	args = append(args, limit)

	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []SearchResult
	for rows.Next() {
		var (
			r                             SearchResult
			msgType                       string
			reactionTarget, reactionEmoji string
			lat, lng                      float64
			locationName, locationAddr    string
		)
		m := &r.Message
		if err := rows.Scan(&m.RowID, &m.ChatJID, &m.MsgID, &m.SenderJID, &msgType, &m.Text, &m.Caption,
			&m.MediaURL, &m.MimeType, &m.FileName, &m.QuotedID, &reactionTarget, &reactionEmoji,
			&lat, &lng, &locationName, &locationAddr, &m.FromMe, &m.Read, &m.Timestamp, &r.Snippet); err != nil {
			return nil, err
		}
		m.Type = domain.MessageType(msgType)
		results = append(results, r)
	}
	return results, rows.Err()
}
