package db

import (
	"context"
	"fmt"

	"github.com/fsdevblog/shortlinks/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormOptions настройки подключения gorm.
type GormOptions struct {
	// Debug включает логирование SQL запросов.
	Debug bool
}

// WithDebug включает логирование SQL запросов.
func WithDebug(debug bool) func(*GormOptions) {
	return func(o *GormOptions) {
		o.Debug = debug
	}
}

func newGormConfig(opts ...func(*GormOptions)) *gorm.Config {
	var options GormOptions
	for _, opt := range opts {
		opt(&options)
	}

	logLevel := logger.Silent
	if options.Debug {
		logLevel = logger.Info
	}
	return &gorm.Config{
		// Ошибки уникальности и внешних ключей приводятся к gorm.ErrDuplicatedKey и
		// gorm.ErrForeignKeyViolated независимо от драйвера.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	}
}

// Migrate создает таблицы links и visits вместе с индексами и внешним ключом.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Link{}, &models.Visit{}); err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}

// GormPinger проверяет доступность базы данных за gorm.
type GormPinger struct {
	DB *gorm.DB
}

func (p GormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
