package sql

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

type LinkRepo struct {
	db *gorm.DB
}

func NewLinkRepo(db *gorm.DB) *LinkRepo {
	return &LinkRepo{
		db: db,
	}
}

// Create вставляет ссылку одним запросом. Нарушение уникального индекса разбирается
// после вставки: если url уже есть в таблице, возвращается repositories.ErrURLTaken,
// иначе repositories.ErrSlugTaken.
func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	err := l.db.WithContext(ctx).Omit("Visits").Create(link).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to create link with slug %s: %w", link.Slug, ConvertErrorType(err))
	}

	link.ID = 0
	var count int64
	if countErr := l.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("url = ?", link.URL).
		Count(&count).Error; countErr != nil {
		return fmt.Errorf("failed to classify duplicate link: %w", ConvertErrorType(countErr))
	}
	if count > 0 {
		return repositories.ErrURLTaken
	}
	return repositories.ErrSlugTaken
}

func (l *LinkRepo) GetBySlug(ctx context.Context, slug string) (*models.Link, error) {
	var link models.Link
	if err := l.db.WithContext(ctx).Where("slug = ?", slug).First(&link).Error; err != nil {
		return nil, fmt.Errorf("failed to get link by slug %s: %w", slug, ConvertErrorType(err))
	}
	return &link, nil
}

func (l *LinkRepo) GetByURL(ctx context.Context, rawURL string) (*models.Link, error) {
	var link models.Link
	if err := l.db.WithContext(ctx).Where("url = ?", rawURL).First(&link).Error; err != nil {
		return nil, fmt.Errorf("failed to get link by url %s: %w", rawURL, ConvertErrorType(err))
	}
	return &link, nil
}
