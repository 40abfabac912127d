package store

import (
	"database/sql"
	"fmt"
)

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

// Tx exposes the write operations ingestion batches inside one transaction.
type Tx struct {
	tx *sql.Tx
}

// WithTx runs fn in a transaction, committing if fn returns nil.
func (db *DB) WithTx(fn func(*Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&Tx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (t *Tx) UpsertAccount(jid, displayName string) (*Account, error) {
	return upsertAccount(t.tx, jid, displayName)
}

func (t *Tx) EnsureConversation(accountUUID, contactJID, name string, mode int) (*Conversation, error) {
	return ensureConversation(t.tx, accountUUID, contactJID, name, mode)
}

func (t *Tx) UpsertMessage(m *Message) error {
	return upsertMessage(t.tx, m)
}
