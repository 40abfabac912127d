package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpsertMessage inserts or updates a message (idempotent on conversation_uuid +
// remote_msg_id). The stored ID and UUID are written back into m.
func (db *DB) UpsertMessage(m *Message) error {
	return upsertMessage(db.DB, m)
}

func upsertMessage(q queryer, m *Message) error {
	if m.UUID == "" {
		m.UUID = uuid.NewString()
	}
	if m.Type == "" {
		m.Type = "text"
	}
	if m.Status == "" {
		m.Status = "received"
	}
	now := time.Now().UnixMilli()
	return q.QueryRow(`
		INSERT INTO messages (uuid, conversation_uuid, remote_msg_id, counterpart, body, oob, file_ref, type, status, time_sent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(conversation_uuid, remote_msg_id) DO UPDATE SET
			counterpart = excluded.counterpart,
			body = excluded.body,
			oob = excluded.oob,
			file_ref = excluded.file_ref,
			status = CASE WHEN `+rankOf("excluded.status")+` > `+rankOf("messages.status")+`
				THEN excluded.status ELSE messages.status END
		RETURNING id, uuid`,
		m.UUID, m.ConversationUUID, m.RemoteMsgID, m.Counterpart, m.Body, m.OOB, m.FileRef, m.Type, m.Status, m.TimeSent, now).
		Scan(&m.ID, &m.UUID)
}

// ListMessages returns messages for a conversation using keyset pagination by time_sent.
func (db *DB) ListMessages(conversationUUID string, beforeTs int64, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 50
	}
	if beforeTs <= 0 {
		beforeTs = time.Now().UnixMilli() + 1
	}
	rows, err := db.Query(`
		SELECT id, uuid, conversation_uuid, remote_msg_id, counterpart, body, oob, file_ref, type, status, time_sent
		FROM messages
		WHERE conversation_uuid = ? AND time_sent < ?
		ORDER BY time_sent DESC, id DESC
		LIMIT ?`, conversationUUID, beforeTs, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.UUID, &m.ConversationUUID, &m.RemoteMsgID, &m.Counterpart, &m.Body, &m.OOB, &m.FileRef, &m.Type, &m.Status, &m.TimeSent); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// MessageCount returns the total number of messages.
func (db *DB) MessageCount() (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&count)
	return count, err
}

// statusRank orders the delivery states of an outgoing message.
var statusRank = map[string]int{"sent": 1, "delivered": 2, "read": 3, "played": 4}

// rankOf is statusRank as SQL; unranked statuses are 0.
func rankOf(col string) string {
	return "CASE " + col + " WHEN 'sent' THEN 1 WHEN 'delivered' THEN 2 WHEN 'read' THEN 3 WHEN 'played' THEN 4 ELSE 0 END"
}

// UpdateMessageStatus advances the delivery status of outgoing messages in
// the conversation of account with contactJID. Statuses never move
// backwards and received messages are left alone. It returns the number of
// rows changed.
func (db *DB) UpdateMessageStatus(accountUUID, contactJID string, remoteIDs []string, status string) (int64, error) {
	rank, ok := statusRank[status]
	if !ok {
		return 0, fmt.Errorf("unknown delivery status %q", status)
	}
	var total int64
	for _, id := range remoteIDs {
		res, err := db.Exec(`
			UPDATE messages SET status = ?
			WHERE remote_msg_id = ?
			  AND CASE status WHEN 'sent' THEN 1 WHEN 'delivered' THEN 2 WHEN 'read' THEN 3 WHEN 'played' THEN 4 ELSE 99 END < ?
			  AND conversation_uuid IN (
				SELECT uuid FROM conversations WHERE account_uuid = ? AND contact_jid = ?
			  )`, status, id, rank, accountUUID, contactJID)
		if err != nil {
			return total, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
