package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultSearchLimit caps how many matches SearchMessages loads.
const DefaultSearchLimit = 200

// DB wraps a SQLite database connection for the app-owned wpp.db.
type DB struct {
	*sql.DB
	searchLimit int
}

// Open creates a new SQLite connection with WAL mode and recommended pragmas.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return &DB{DB: db, searchLimit: DefaultSearchLimit}, nil
}

// SetSearchLimit changes the search window. Non-positive values restore the default.
func (db *DB) SetSearchLimit(n int) {
	if n <= 0 {
		n = DefaultSearchLimit
	}
	db.searchLimit = n
}
