package storage

import (
	"context"
	"errors"
	"fmt"

	"rogue-engine/internal/domain"
)

var (
	// ErrNotFound - в слоте нет сохранения
	ErrNotFound = errors.New("storage: save not found")
	// ErrCorrupt - сохранение есть, но прочитать его нельзя. Движок начинает новую игру.
	ErrCorrupt = errors.New("storage: save is corrupt")
)

// Store - хранилище сохранений по именованным слотам (слот = токен сессии).
type Store interface {
	Save(ctx context.Context, slot string, snap *domain.Snapshot) error
	Load(ctx context.Context, slot string) (*domain.Snapshot, error)
	Delete(ctx context.Context, slot string) error
	Close() error
}

// Open выбирает реализацию по имени драйвера: file, sqlite, postgres.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "file", "":
		return NewFileStore(dsn)
	case "sqlite", "postgres":
		return NewSQLStore(ctx, driver, dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
