package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/studium-labs/studium-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/studium-labs/studium-cli/internal/core/domain"
	"github.com/studium-labs/studium-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.TopicStore = (*Store)(nil)

// Store is a SQLite-backed topic store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.studium/data/topics.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".studium", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "topics.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveTopic stores or updates a topic.
func (s *Store) SaveTopic(ctx context.Context, topic *domain.Topic) error {
	keywordsJSON, err := json.Marshal(topic.Keywords)
	if err != nil {
		return fmt.Errorf("marshalling keywords: %w", err)
	}
	conceptsJSON, err := json.Marshal(topic.Concepts)
	if err != nil {
		return fmt.Errorf("marshalling concepts: %w", err)
	}

	now := time.Now().UTC()
	if topic.CreatedAt.IsZero() {
		topic.CreatedAt = now
	}
	topic.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO topics (id, name, keywords, concepts, raw, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			keywords = excluded.keywords,
			concepts = excluded.concepts,
			raw = excluded.raw,
			updated_at = excluded.updated_at
	`, topic.ID, topic.Name, string(keywordsJSON), string(conceptsJSON),
		topic.Raw, topic.CreatedAt, topic.UpdatedAt)
	if err != nil {
		// The unique index on name rejects a second topic with the
		// same name under a different ID.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("topic %q: %w", topic.Name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("saving topic: %w", err)
	}
	return nil
}

// GetTopic retrieves a topic by ID.
func (s *Store) GetTopic(ctx context.Context, id string) (*domain.Topic, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, keywords, concepts, raw, created_at, updated_at
		FROM topics WHERE id = ?
	`, id)
	return scanTopic(row)
}

// GetTopicByName retrieves a topic by name, case-insensitively.
func (s *Store) GetTopicByName(ctx context.Context, name string) (*domain.Topic, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, keywords, concepts, raw, created_at, updated_at
		FROM topics WHERE name = ? COLLATE NOCASE
	`, name)
	return scanTopic(row)
}

// ListTopics returns all stored topics, ordered by name.
func (s *Store) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, keywords, concepts, raw, created_at, updated_at
		FROM topics ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, *topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topics: %w", err)
	}
	return topics, nil
}

// DeleteTopic removes a topic by ID.
func (s *Store) DeleteTopic(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM topics WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting topic: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanTopic.
type scanner interface {
	Scan(dest ...any) error
}

// scanTopic reads one topic row, decoding the JSON columns.
func scanTopic(row scanner) (*domain.Topic, error) {
	var (
		topic        domain.Topic
		keywordsJSON string
		conceptsJSON string
	)
	err := row.Scan(&topic.ID, &topic.Name, &keywordsJSON, &conceptsJSON,
		&topic.Raw, &topic.CreatedAt, &topic.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning topic: %w", err)
	}

	if err := json.Unmarshal([]byte(keywordsJSON), &topic.Keywords); err != nil {
		return nil, fmt.Errorf("unmarshalling keywords: %w", err)
	}
	if err := json.Unmarshal([]byte(conceptsJSON), &topic.Concepts); err != nil {
		return nil, fmt.Errorf("unmarshalling concepts: %w", err)
	}
	return &topic, nil
}
