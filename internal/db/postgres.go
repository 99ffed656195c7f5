package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection создает новый пул подключений к PostgreSQL.
//
// Параметры:
//   - ctx: контекст выполнения
//   - dsn: строка подключения к базе данных (Data Source Name)
//
// Возвращает:
//   - *pgxpool.Pool: пул подключений к PostgreSQL
//   - error: ошибка создания подключения
func NewPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("failed to parse config: %w", confErr)
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %w", poolErr)
	}
	return pool, nil
}

// NewPostgres поднимает gorm поверх пула pgx и применяет миграции.
//
// Параметры:
//   - ctx: контекст выполнения
//   - dsn: строка подключения к базе данных
//   - opts: настройки gorm
//
// Возвращает:
//   - *gorm.DB: подключение gorm
//   - error: ошибка подключения или миграции
func NewPostgres(ctx context.Context, dsn string, opts ...func(*GormOptions)) (*gorm.DB, error) {
	pool, err := NewPostgresConnection(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", pingErr)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	conn, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), newGormConfig(opts...))
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("open gorm over pgx pool: %w", err)
	}
	if migrateErr := Migrate(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return conn, nil
}
