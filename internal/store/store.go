package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Madmartigan1/zeldachat/internal/store/migrations"
)

// Store wraps the database connection for the exchange log.
type Store struct {
	*sql.DB
}

// Exchange is one logged chat round trip.
type Exchange struct {
	ID        int64
	Mode      string
	Message   string
	Reply     string
	Tone      string
	AudioFile string
	CreatedAt time.Time
}

// ToneCount is the number of logged exchanges for one tone.
type ToneCount struct {
	Tone  string
	Count int64
}

// NewStore creates a new database connection.
func NewStore(ctx context.Context, dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &Store{DB: sqlDB}, nil
}

// Migrate runs all pending database migrations.
func (s *Store) Migrate(ctx context.Context) error {
	slog.Info("running database migrations")

	_, err := s.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	rows, err := s.QueryContext(ctx, "SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("scan migration: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate migrations: %w", err)
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		if applied[file] {
			slog.Debug("migration already applied", "file", file)
			continue
		}

		slog.Info("applying migration", "file", file)

		content, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		if _, err := s.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}

		if _, err := s.ExecContext(ctx,
			"INSERT INTO schema_migrations (version) VALUES (?)", file); err != nil {
			return fmt.Errorf("record migration %s: %w", file, err)
		}
	}

	return nil
}

// RecordExchange logs one chat round trip.
func (s *Store) RecordExchange(ctx context.Context, ex Exchange) error {
	_, err := s.ExecContext(ctx, `
		INSERT INTO exchanges (mode, message, reply, tone, audio_file)
		VALUES (?, ?, ?, ?, ?)
	`, ex.Mode, ex.Message, ex.Reply, ex.Tone, ex.AudioFile)
	if err != nil {
		return fmt.Errorf("insert exchange: %w", err)
	}
	return nil
}

// CountExchanges returns the total number of logged exchanges.
func (s *Store) CountExchanges(ctx context.Context) (int64, error) {
	var count int64
	err := s.QueryRowContext(ctx, "SELECT COUNT(*) FROM exchanges").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count exchanges: %w", err)
	}
	return count, nil
}

// CountByTone returns exchange counts grouped by tone, most frequent
// first.
func (s *Store) CountByTone(ctx context.Context) ([]ToneCount, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT tone, COUNT(*) AS n
		FROM exchanges
		GROUP BY tone
		ORDER BY n DESC, tone
	`)
	if err != nil {
		return nil, fmt.Errorf("count by tone: %w", err)
	}
	defer rows.Close()

	var counts []ToneCount
	for rows.Next() {
		var tc ToneCount
		if err := rows.Scan(&tc.Tone, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan tone count: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tone counts: %w", err)
	}

	return counts, nil
}

// RecentExchanges returns the newest exchanges, up to limit.
func (s *Store) RecentExchanges(ctx context.Context, limit int) ([]Exchange, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, mode, message, reply, tone, COALESCE(audio_file, ''), created_at
		FROM exchanges
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent exchanges: %w", err)
	}
	defer rows.Close()

	var exchanges []Exchange
	for rows.Next() {
		var ex Exchange
		if err := rows.Scan(&ex.ID, &ex.Mode, &ex.Message, &ex.Reply,
			&ex.Tone, &ex.AudioFile, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exchange: %w", err)
		}
		exchanges = append(exchanges, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exchanges: %w", err)
	}

	return exchanges, nil
}
