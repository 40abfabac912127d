package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EnsureConversation returns the conversation for (accountUUID, contactJID),
// creating it if needed. A non-empty name and the mode are refreshed on an
// existing row; its status is left alone.
func (db *DB) EnsureConversation(accountUUID, contactJID, name string, mode int) (*Conversation, error) {
	return ensureConversation(db.DB, accountUUID, contactJID, name, mode)
}

func ensureConversation(q queryer, accountUUID, contactJID, name string, mode int) (*Conversation, error) {
	now := time.Now().UnixMilli()
	var c Conversation
	err := q.QueryRow(`
		INSERT INTO conversations (uuid, account_uuid, contact_jid, name, mode, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(account_uuid, contact_jid) DO UPDATE SET
			name = CASE WHEN excluded.name != '' THEN excluded.name ELSE conversations.name END,
			mode = excluded.mode,
			updated_at = excluded.updated_at
		RETURNING uuid, account_uuid, contact_jid, name, mode, status, updated_at`,
		uuid.NewString(), accountUUID, contactJID, name, mode, ConversationOpen, now, now).
		Scan(&c.UUID, &c.AccountUUID, &c.ContactJID, &c.Name, &c.Mode, &c.Status, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetConversation returns a conversation by UUID, or nil if it does not exist.
func (db *DB) GetConversation(conversationUUID string) (*Conversation, error) {
	var c Conversation
	err := db.QueryRow(`
		SELECT uuid, account_uuid, contact_jid, name, mode, status, updated_at
		FROM conversations WHERE uuid = ?`, conversationUUID).
		Scan(&c.UUID, &c.AccountUUID, &c.ContactJID, &c.Name, &c.Mode, &c.Status, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListConversations returns conversations with the given status, most
// recently updated first.
func (db *DB) ListConversations(status ConversationStatus) ([]Conversation, error) {
	rows, err := db.Query(`
		SELECT uuid, account_uuid, contact_jid, name, mode, status, updated_at
		FROM conversations
		WHERE status = ?
		ORDER BY updated_at DESC, uuid ASC`, status)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var convs []Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.UUID, &c.AccountUUID, &c.ContactJID, &c.Name, &c.Mode, &c.Status, &c.UpdatedAt); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

// SetConversationStatus archives or reopens a conversation.
func (db *DB) SetConversationStatus(conversationUUID string, status ConversationStatus) error {
	res, err := db.Exec(`UPDATE conversations SET status = ?, updated_at = ? WHERE uuid = ?`,
		status, time.Now().UnixMilli(), conversationUUID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("conversation %q: %w", conversationUUID, sql.ErrNoRows)
	}
	return nil
}

// ConversationCount returns the total number of conversations.
func (db *DB) ConversationCount() (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM conversations`).Scan(&count)
	return count, err
}
