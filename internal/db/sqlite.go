package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqliteDSNParams включают внешние ключи (нужны для каскадного удаления визитов) и
// ожидание блокировки вместо мгновенной ошибки `database is locked`.
const sqliteDSNParams = "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"

// NewSQLite открывает (или создает) базу SQLite по пути dbPath и применяет миграции.
// Для ":memory:" база живет, пока открыто единственное соединение.
func NewSQLite(dbPath string, opts ...func(*GormOptions)) (*gorm.DB, error) {
	conn, connErr := connectSQLite(dbPath, opts...)
	if connErr != nil {
		return nil, fmt.Errorf("init database error: %w", connErr)
	}
	if migrateErr := Migrate(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return conn, nil
}

func connectSQLite(dbPath string, opts ...func(*GormOptions)) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(dbPath)), newGormConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	// SQLite допускает одного писателя, поэтому сериализуем доступ на уровне пула.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

func sqliteDSN(dbPath string) string {
	if dbPath == ":memory:" {
		return "file::memory:?" + sqliteDSNParams
	}
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + sqliteDSNParams
}
