package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UpsertAccount inserts an account for jid or refreshes its display name.
// The stored row, including its UUID, is returned.
func (db *DB) UpsertAccount(jid, displayName string) (*Account, error) {
	return upsertAccount(db.DB, jid, displayName)
}

func upsertAccount(q queryer, jid, displayName string) (*Account, error) {
	now := time.Now().UnixMilli()
	var a Account
	err := q.QueryRow(`
		INSERT INTO accounts (uuid, jid, display_name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(jid) DO UPDATE SET
			display_name = CASE WHEN excluded.display_name != '' THEN excluded.display_name ELSE accounts.display_name END
		RETURNING uuid, jid, display_name`,
		uuid.NewString(), jid, displayName, now).
		Scan(&a.UUID, &a.JID, &a.DisplayName)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccountByJID returns the account for jid, or nil if none exists.
func (db *DB) GetAccountByJID(jid string) (*Account, error) {
	var a Account
	err := db.QueryRow(`SELECT uuid, jid, display_name FROM accounts WHERE jid = ?`, jid).
		Scan(&a.UUID, &a.JID, &a.DisplayName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAccounts returns all accounts ordered by creation.
func (db *DB) ListAccounts() ([]Account, error) {
	rows, err := db.Query(`SELECT uuid, jid, display_name FROM accounts ORDER BY created_at ASC, jid ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.UUID, &a.JID, &a.DisplayName); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
