package logs

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EncodingType определяет формат вывода логов.
type EncodingType string

// LevelType определяет уровень логирования.
type LevelType string

const (
	EncodingTypeConsole EncodingType = "console"
	EncodingTypeJSON    EncodingType = "json"
)

const (
	LevelTypeDebug   LevelType = "debug"
	LevelTypeInfo    LevelType = "info"
	LevelTypeWarning LevelType = "warn"
	LevelTypeError   LevelType = "error"
)

// LoggerOptions настройки логгера.
type LoggerOptions struct {
	Level            LevelType      // Уровень логирования
	Encoding         EncodingType   // Формат вывода
	OutputPaths      []string       // Пути вывода логов
	ErrorOutputPaths []string       // Пути вывода ошибок
	InitialFields    map[string]any // Начальные поля для каждой записи
}

// WithLevel задает уровень логирования. Пустое значение оставляет уровень по умолчанию.
func WithLevel(level string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		if level != "" {
			o.Level = LevelType(level)
		}
	}
}

// WithEncoding задает формат вывода. Пустое значение оставляет формат по умолчанию.
func WithEncoding(encoding string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		if encoding != "" {
			o.Encoding = EncodingType(encoding)
		}
	}
}

// WithOutput перенаправляет обычный вывод и вывод ошибок логгера.
func WithOutput(paths ...string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		o.OutputPaths = paths
		o.ErrorOutputPaths = paths
	}
}

// New создает новый логгер с указанными настройками.
// Вне релизного режима gin (GIN_MODE=release) по умолчанию пишет в консольном формате с уровнем debug,
// в релизе в JSON с уровнем info.
//
// Параметры:
//   - opts: функции для настройки логгера
//
// Возвращает:
//   - *zap.Logger: настроенный логгер
//   - error: ошибка создания логгера
func New(opts ...func(*LoggerOptions)) (*zap.Logger, error) {
	isProduction := os.Getenv("GIN_MODE") == "release"

	options := LoggerOptions{
		Level:            LevelTypeDebug,
		Encoding:         EncodingTypeConsole,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if isProduction {
		options.Level = LevelTypeInfo
		options.Encoding = EncodingTypeJSON
	}
	for _, opt := range opts {
		opt(&options)
	}

	lvl, errLvl := zap.ParseAtomicLevel(string(options.Level))
	if errLvl != nil {
		return nil, fmt.Errorf("parse level: %w", errLvl)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	conf := zap.Config{
		Level:             lvl,
		Development:       !isProduction,
		Encoding:          string(options.Encoding),
		EncoderConfig:     encoderConfig,
		OutputPaths:       options.OutputPaths,
		ErrorOutputPaths:  options.ErrorOutputPaths,
		InitialFields:     options.InitialFields,
		DisableStacktrace: true,
	}

	log, err := conf.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// MustNew создает новый логгер с указанными настройками.
// В случае ошибки вызывает panic.
func MustNew(opts ...func(*LoggerOptions)) *zap.Logger {
	log, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return log
}
