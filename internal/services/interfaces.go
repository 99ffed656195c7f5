package services

import (
	"context"
	"time"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// LinkRepository описывает хранилище ссылок.
type LinkRepository interface {
	// Create атомарно создает ссылку. Возвращает repositories.ErrURLTaken или
	// repositories.ErrSlugTaken, если нарушена уникальность url или слага.
	Create(ctx context.Context, link *models.Link) error
	// GetBySlug находит ссылку по слагу.
	GetBySlug(ctx context.Context, slug string) (*models.Link, error)
	// GetByURL находит ссылку по исходному url.
	GetByURL(ctx context.Context, rawURL string) (*models.Link, error)
}

// VisitRepository описывает журнал визитов.
type VisitRepository interface {
	// Record добавляет визит. Возвращает repositories.ErrLinkNotFound, если ссылки уже нет.
	Record(ctx context.Context, linkID uint, at time.Time) (*models.Visit, error)
	CountTotal(ctx context.Context, linkID uint) (int64, error)
	// CountByDay возвращает разреженную гистограмму визитов по суткам UTC в порядке возрастания.
	CountByDay(ctx context.Context, linkID uint) ([]repositories.DayCount, error)
}

// SlugGenerator выдает случайные слаги.
type SlugGenerator interface {
	Generate() (string, error)
}

// MetricsRecorder принимает события сервиса ссылок.
type MetricsRecorder interface {
	LinkCreated()
	SlugCollision()
	VisitRecorded()
	VisitRecordFailed()
}
