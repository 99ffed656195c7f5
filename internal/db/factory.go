package db

import (
	"context"
	"errors"
	"fmt"
)

type StorageType string

const (
	StorageTypeInMemory StorageType = "inMemory"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypePostgres StorageType = "postgres"
)

type FactoryConfig struct {
	StorageType  StorageType
	PostgresDSN  *string
	SqliteDBPath *string
	Debug        bool
}

// NewConnectionFactory открывает хранилище нужного типа.
// Возвращает *gorm.DB для SQL хранилищ и *MemoryStorage для in-memory.
func NewConnectionFactory(ctx context.Context, config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == nil || *config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		conn, err := NewPostgres(ctx, *config.PostgresDSN, WithDebug(config.Debug))
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres connection: %w", err)
		}
		return conn, nil
	case StorageTypeSQLite:
		if config.SqliteDBPath == nil || *config.SqliteDBPath == "" {
			return nil, errors.New("sqlite db path is empty")
		}
		conn, err := NewSQLite(*config.SqliteDBPath, WithDebug(config.Debug))
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite connection: %w", err)
		}
		return conn, nil
	case StorageTypeInMemory:
		return NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}
