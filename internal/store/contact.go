package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/joaovbs/wab/internal/domain"
)

const contactUpsert = `
	INSERT INTO contacts (jid, name, push_name, business_name, phone_number, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(jid) DO UPDATE SET
		name = CASE WHEN excluded.name != '' THEN excluded.name ELSE contacts.name END,
		push_name = CASE WHEN excluded.push_name != '' THEN excluded.push_name ELSE contacts.push_name END,
		business_name = CASE WHEN excluded.business_name != '' THEN excluded.business_name ELSE contacts.business_name END,
		phone_number = CASE WHEN excluded.phone_number != '' THEN excluded.phone_number ELSE contacts.phone_number END,
		updated_at = excluded.updated_at`

// UpsertContact inserts or refreshes a contact. Empty incoming fields never
// overwrite known values; contacts are an opportunistic cache.
func (db *DB) UpsertContact(c *domain.Contact) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(contactUpsert, c.JID, c.Name, c.PushName, c.BusinessName, c.PhoneNumber, now)
	return err
}

// BulkUpsertContacts refreshes multiple contacts in a single transaction.
func (db *DB) BulkUpsertContacts(contacts []domain.Contact) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UnixMilli()
	for _, c := range contacts {
		if _, err := tx.Exec(contactUpsert, c.JID, c.Name, c.PushName, c.BusinessName, c.PhoneNumber, now); err != nil {
			return fmt.Errorf("upsert contact %q: %w", c.JID, err)
		}
	}
	return tx.Commit()
}

// GetContact returns a contact by JID, or nil if unknown.
func (db *DB) GetContact(jid string) (*domain.Contact, error) {
	var c domain.Contact
	err := db.QueryRow(`SELECT jid, name, push_name, business_name, phone_number FROM contacts WHERE jid = ?`, jid).
		Scan(&c.JID, &c.Name, &c.PushName, &c.BusinessName, &c.PhoneNumber)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
