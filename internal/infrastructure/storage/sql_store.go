package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// SQLStore хранит закодированные сохранения в таблице saves.
// Один код на оба драйвера: отличаются только плейсхолдеры и тип колонки.
type SQLStore struct {
	db     *sql.DB
	driver string
}

func NewSQLStore(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite не любит параллельных писателей
	if driver == "sqlite" {
		db.SetMaxOpenConns(1)
	}

	store := &SQLStore{db: db, driver: driver}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// bind возвращает n-й плейсхолдер в синтаксисе драйвера
func (s *SQLStore) bind(n int) string {
	if s.driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (s *SQLStore) initSchema(ctx context.Context) error {
	blob := "BLOB"
	if s.driver == "postgres" {
		blob = "BYTEA"
	}
	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		floor INTEGER NOT NULL,
		data %s NOT NULL,
		updated_at BIGINT NOT NULL
	)`, blob)

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *SQLStore) Save(ctx context.Context, slot string, snap *domain.Snapshot) error {
	data, err := EncodeBytes(snap)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
	INSERT INTO saves (slot, floor, data, updated_at)
	VALUES (%s, %s, %s, %s)
	ON CONFLICT (slot)
	DO UPDATE SET floor = excluded.floor, data = excluded.data, updated_at = excluded.updated_at`,
		s.bind(1), s.bind(2), s.bind(3), s.bind(4))

	if _, err := s.db.ExecContext(ctx, query, slot, snap.CurrentFloor, data, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "sql_store",
		"driver":    s.driver,
		"slot":      slot,
		"floor":     snap.CurrentFloor,
		"bytes":     len(data),
	}).Info("Game saved.")
	return nil
}

func (s *SQLStore) Load(ctx context.Context, slot string) (*domain.Snapshot, error) {
	query := fmt.Sprintf(`SELECT data FROM saves WHERE slot = %s`, s.bind(1))

	var data []byte
	if err := s.db.QueryRowContext(ctx, query, slot).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return DecodeBytes(data)
}

func (s *SQLStore) Delete(ctx context.Context, slot string) error {
	query := fmt.Sprintf(`DELETE FROM saves WHERE slot = %s`, s.bind(1))

	res, err := s.db.ExecContext(ctx, query, slot)
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
