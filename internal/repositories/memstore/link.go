package memstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/db/memory"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

const (
	linkSlugPrefix = "links:slug:"
	linkURLPrefix  = "links:url:"
	linkIDPrefix   = "links:id:"
)

func linkSlugKey(slug string) string { return linkSlugPrefix + slug }
func linkURLKey(url string) string   { return linkURLPrefix + url }
func linkIDKey(id uint) string       { return linkIDPrefix + strconv.FormatUint(uint64(id), 10) }

// LinkRepo представляет собой репозиторий для работы со ссылками в памяти.
type LinkRepo struct {
	s *db.MemoryStorage
}

// NewLinkRepo создает новый экземпляр репозитория ссылок.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//
// Возвращает:
//   - *LinkRepo: инициализированный репозиторий
func NewLinkRepo(store *db.MemoryStorage) *LinkRepo {
	return &LinkRepo{
		s: store,
	}
}

// Create атомарно создает ссылку. Если url уже занят, возвращается repositories.ErrURLTaken,
// если занят слаг, то repositories.ErrSlugTaken. При ошибке ничего не записывается.
//
// Параметры:
//   - ctx: контекст выполнения
//   - link: ссылка; ID и CreatedAt (если не задан) заполняются при успешном создании
//
// Возвращает:
//   - error: ошибка создания
func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	err := l.s.Update(ctx, func(tx *memory.Txn) error {
		if tx.Exists(linkURLKey(link.URL)) {
			return repositories.ErrURLTaken
		}
		if tx.Exists(linkSlugKey(link.Slug)) {
			return repositories.ErrSlugTaken
		}

		record := *link
		record.ID = l.s.NextID()
		record.Visits = nil
		if record.CreatedAt.IsZero() {
			record.CreatedAt = time.Now().UTC()
		}

		for _, key := range []string{linkSlugKey(record.Slug), linkURLKey(record.URL), linkIDKey(record.ID)} {
			if err := memory.TxSet(tx, key, &record); err != nil {
				return err //nolint:wrapcheck
			}
		}
		link.ID = record.ID
		link.CreatedAt = record.CreatedAt
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create link with slug %s: %w", link.Slug, convertErrorType(err))
	}
	return nil
}

// GetBySlug получает ссылку по слагу.
//
// Параметры:
//   - ctx: контекст выполнения
//   - slug: слаг ссылки
//
// Возвращает:
//   - *models.Link: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (l *LinkRepo) GetBySlug(ctx context.Context, slug string) (*models.Link, error) {
	link, err := memory.Get[models.Link](ctx, linkSlugKey(slug), l.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get link by slug %s: %w", slug, convertErrorType(err))
	}
	return link, nil
}

// GetByURL получает ссылку по оригинальному URL.
//
// Параметры:
//   - ctx: контекст выполнения
//   - rawURL: оригинальный URL
//
// Возвращает:
//   - *models.Link: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (l *LinkRepo) GetByURL(ctx context.Context, rawURL string) (*models.Link, error) {
	link, err := memory.Get[models.Link](ctx, linkURLKey(rawURL), l.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get link by url %s: %w", rawURL, convertErrorType(err))
	}
	return link, nil
}
