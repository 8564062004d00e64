package reportstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	lockRetryDelay = 50 * time.Millisecond
	// Fixed-width so stored timestamps sort lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Run is one finished report.
type Run struct {
	ID        string
	CreatedAt time.Time
	Mode      string
	Reverse   bool
	Locale    string
	Documents []string
	Words     []Word
}

// Word is one printed report row.
type Word struct {
	Word string
	// Document is the 1-based index of the owning document.
	Document int
	Count    uint64
}

// Store manages report persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the report database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("report store path is empty")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: flock.New(path + ".lock")}
	if err := store.withLock(ctx, func() error { return store.initSchema(ctx) }); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun persists run in a single transaction. A missing ID is generated and
// a zero CreatedAt is set to now; the stored run is returned.
func (s *Store) SaveRun(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	err := s.withLock(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin run tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs (id, created_at, mode, reverse, locale) VALUES (?, ?, ?, ?, ?)`,
			run.ID, run.CreatedAt.Format(timeLayout), run.Mode, boolToInt(run.Reverse), run.Locale,
		); err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		docStmt, err := tx.PrepareContext(ctx, `INSERT INTO run_documents (run_id, position, name) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare documents: %w", err)
		}
		defer docStmt.Close()
		for i, name := range run.Documents {
			if _, err := docStmt.ExecContext(ctx, run.ID, i+1, name); err != nil {
				return fmt.Errorf("insert document %q: %w", name, err)
			}
		}

		wordStmt, err := tx.PrepareContext(ctx, `INSERT INTO run_words (run_id, rank, word, document, count) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare words: %w", err)
		}
		defer wordStmt.Close()
		for i, w := range run.Words {
			if _, err := wordStmt.ExecContext(ctx, run.ID, i+1, w.Word, w.Document, int64(w.Count)); err != nil {
				return fmt.Errorf("insert word %q: %w", w.Word, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit run: %w", err)
		}
		return nil
	})
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// Runs lists stored runs, newest first. Words are not loaded.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, mode, reverse, locale FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run     Run
			created string
			reverse int
		)
		if err := rows.Scan(&run.ID, &created, &run.Mode, &reverse, &run.Locale); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parse run time %q: %w", created, err)
		}
		run.Reverse = reverse != 0
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	for i := range runs {
		docs, err := s.documents(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Documents = docs
	}
	return runs, nil
}

// Words returns the stored rows of a run in report order.
func (s *Store) Words(ctx context.Context, runID string) ([]Word, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, document, count FROM run_words WHERE run_id = ? ORDER BY rank`, runID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		var (
			w     Word
			count int64
		)
		if err := rows.Scan(&w.Word, &w.Document, &count); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		w.Count = uint64(count)
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

func (s *Store) documents(ctx context.Context, runID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM run_documents WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *Store) withLock(ctx context.Context, fn func() error) error {
	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire store lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("acquire store lock: %s is held by another process", s.lock.Path())
	}
	defer func() { _ = s.lock.Unlock() }()
	return fn()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
