package store

import "fmt"

// SearchMessages runs a full-text query for terms and returns the newest
// matches, up to the configured search limit, as a cursor ordered oldest to
// newest. Empty terms yield an empty cursor.
func (db *DB) SearchMessages(terms []string) (*Cursor, error) {
	match := MatchString(terms)
	if match == "" {
		return &Cursor{pos: -1}, nil
	}

	rows, err := db.Query(`
		SELECT uuid, conversation_uuid, account_uuid, contact_jid, mode, body, oob, file_ref, counterpart, status, time_sent
		FROM (
			SELECT m.id, m.uuid, m.conversation_uuid, c.account_uuid, c.contact_jid, c.mode,
			       m.body, m.oob, m.file_ref, m.counterpart, m.status, m.time_sent
			FROM messages_index
			JOIN messages m ON m.id = messages_index.docid
			JOIN conversations c ON c.uuid = m.conversation_uuid
			WHERE messages_index MATCH ?
			ORDER BY m.time_sent DESC, m.id DESC
			LIMIT ?
		)
		ORDER BY time_sent ASC, id ASC`, match, db.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", match, err)
	}
	defer func() { _ = rows.Close() }()

	var out []SearchRow
	for rows.Next() {
		var r SearchRow
		if err := rows.Scan(&r.UUID, &r.ConversationUUID, &r.AccountUUID, &r.ContactJID, &r.Mode,
			&r.Body, &r.OOB, &r.FileRef, &r.Counterpart, &r.Status, &r.TimeSent); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &Cursor{rows: out, pos: -1}, nil
}

// OptimizeIndex merges the full-text index segments.
func (db *DB) OptimizeIndex() error {
	_, err := db.Exec(`INSERT INTO messages_index(messages_index) VALUES('optimize')`)
	return err
}

// Cursor is a materialized, bidirectional view over search rows.
type Cursor struct {
	rows   []SearchRow
	pos    int
	closed bool
}

// Count returns the number of rows.
func (c *Cursor) Count() int { return len(c.rows) }

// MoveToLast positions the cursor at the newest row.
func (c *Cursor) MoveToLast() bool {
	if c.closed || len(c.rows) == 0 {
		return false
	}
	c.pos = len(c.rows) - 1
	return true
}

// MoveToPrevious steps one row towards the oldest match.
func (c *Cursor) MoveToPrevious() bool {
	if c.closed || c.pos <= 0 {
		c.pos = -1
		return false
	}
	c.pos--
	return true
}

// Row returns the row under the cursor. It panics if the cursor is not positioned.
func (c *Cursor) Row() SearchRow {
	return c.rows[c.pos]
}

// Close releases the rows. Close is idempotent.
func (c *Cursor) Close() error {
	c.closed = true
	c.rows = nil
	c.pos = -1
	return nil
}
