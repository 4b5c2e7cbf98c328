// Package store keeps a local log of generation runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Run records one invocation of the external generator.
type Run struct {
	ID         string    `json:"id"`
	Mode       string    `json:"mode"` // manual, context or style
	Identifier string    `json:"identifier"`
	Variant    string    `json:"variant,omitempty"`
	DraftPath  string    `json:"draft_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Run modes.
const (
	ModeManual  = "manual"
	ModeContext = "context"
	ModeStyle   = "style"
)

// History is the SQLite-backed run log.
type History struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open opens or creates the run log at the given path.
func Open(dbPath string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	h := &History{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := h.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return h, nil
}

func (h *History) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), h.entropy).String()
}

func (h *History) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		mode       TEXT NOT NULL,
		identifier TEXT NOT NULL,
		variant    TEXT,
		draft_path TEXT,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
	`
	_, err := h.db.Exec(schema)
	return err
}

// Record appends one run to the log and returns it with id and timestamp
// filled in.
func (h *History) Record(ctx context.Context, r Run) (*Run, error) {
	r.ID = h.newID()
	r.CreatedAt = time.Now().UTC()

	_, err := h.db.ExecContext(ctx,
		`INSERT INTO runs (id, mode, identifier, variant, draft_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Mode, r.Identifier, nullable(r.Variant), nullable(r.DraftPath),
		r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return &r, nil
}

// ListParams filters the run listing.
type ListParams struct {
	Mode  string
	Limit int
}

// List returns recent runs, newest first.
func (h *History) List(ctx context.Context, p ListParams) ([]Run, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, mode, identifier, variant, draft_path, created_at
	          FROM runs`
	args := []interface{}{}
	if p.Mode != "" {
		query += ` WHERE mode = ?`
		args = append(args, p.Mode)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var variant, draftPath sql.NullString
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Mode, &r.Identifier, &variant, &draftPath, &createdAt); err != nil {
			return nil, err
		}
		r.Variant = variant.String
		r.DraftPath = draftPath.String
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// Close closes the underlying database.
func (h *History) Close() error {
	return h.db.Close()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
