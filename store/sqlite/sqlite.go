/*
Package sqlite provides SQLite-backed persistence for saved scenarios.

PURPOSE:
  The calculation itself is a stateless pure transform; the store only keeps
  caller-named input snapshots together with their computed summary, so a
  front end can reload and re-run what-if scenarios.

KEY TABLE:
  scenarios: id, name, description, input_json, summary_json, created_at

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/fiscal.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper migration
  tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - api/handlers.go: Scenario endpoints using this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ScenarioRecord is one saved calculation snapshot.
type ScenarioRecord struct {
	ID          string
	Name        string
	Description string
	InputJSON   string
	SummaryJSON string
	CreatedAt   time.Time
}

// Store persists scenarios in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		input_json TEXT NOT NULL,
		summary_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scenarios_created_at
		ON scenarios(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveScenario stores a new scenario and returns its generated ID.
func (s *Store) SaveScenario(ctx context.Context, name, description, inputJSON, summaryJSON string) (*ScenarioRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &ScenarioRecord{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		InputJSON:   inputJSON,
		SummaryJSON: summaryJSON,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scenarios (id, name, description, input_json, summary_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.Name, record.Description,
		record.InputJSON, record.SummaryJSON,
		record.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save scenario: %w", err)
	}
	return record, nil
}

// GetScenario returns a scenario by ID, or nil when it does not exist.
func (s *Store) GetScenario(ctx context.Context, id string) (*ScenarioRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, input_json, summary_json, created_at
		FROM scenarios WHERE id = ?`, id)

	record, err := scanScenario(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}
	return record, nil
}

// ListScenarios returns all scenarios, newest first.
func (s *Store) ListScenarios(ctx context.Context) ([]ScenarioRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, input_json, summary_json, created_at
		FROM scenarios ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	var records []ScenarioRecord
	for rows.Next() {
		record, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenario: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// DeleteScenario removes a scenario. Deleting a missing ID is not an error.
func (s *Store) DeleteScenario(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (*ScenarioRecord, error) {
	var record ScenarioRecord
	var createdAt string

	err := row.Scan(&record.ID, &record.Name, &record.Description,
		&record.InputJSON, &record.SummaryJSON, &createdAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &record, nil
}
