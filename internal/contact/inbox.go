package contact

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Message is one submitted contact form.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Body      string
	Source    string // "local", or the ssh/web client that sent it
	CreatedAt time.Time
}

// Inbox stores submitted messages in SQLite. One inbox is shared by every
// session of a server process.
type Inbox struct {
	mu sync.RWMutex
	db *sql.DB
}

// OpenInbox opens (or creates) the inbox database at path. Use ":memory:"
// for an in-memory database.
func OpenInbox(path string) (*Inbox, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create inbox directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS messages (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		body       TEXT NOT NULL,
		source     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Inbox{db: db}, nil
}

// Save stores m and returns its id. CreatedAt defaults to now.
func (in *Inbox) Save(ctx context.Context, m Message) (int64, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	res, err := in.db.ExecContext(ctx,
		"INSERT INTO messages (name, email, body, source, created_at) VALUES (?, ?, ?, ?, ?)",
		m.Name, m.Email, m.Body, m.Source, m.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("save message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save message: %w", err)
	}
	return id, nil
}

// List returns messages newest first. A limit of 0 returns all of them.
func (in *Inbox) List(ctx context.Context, limit int) ([]Message, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	q := "SELECT id, name, email, body, source, created_at FROM messages ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := in.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		var created string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Source, &created); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Count returns the number of stored messages.
func (in *Inbox) Count(ctx context.Context) (int, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	var n int
	if err := in.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages").Scan(&n); err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return n, nil
}

// Clear deletes every message and returns how many were removed.
func (in *Inbox) Clear(ctx context.Context) (int64, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	res, err := in.db.ExecContext(ctx, "DELETE FROM messages")
	if err != nil {
		return 0, fmt.Errorf("clear messages: %w", err)
	}
	return res.RowsAffected()
}

func (in *Inbox) Close() error {
	return in.db.Close()
}
