package sql

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

const dayLayout = "2006-01-02"

type VisitRepo struct {
	db *gorm.DB
}

func NewVisitRepo(db *gorm.DB) *VisitRepo {
	return &VisitRepo{
		db: db,
	}
}

// Record вставляет визит. Отсутствие ссылки определяется по нарушению внешнего ключа, а если
// драйвер его не распознал, то повторной проверкой существования ссылки.
func (v *VisitRepo) Record(ctx context.Context, linkID uint, at time.Time) (*models.Visit, error) {
	visit := models.Visit{
		LinkID:    linkID,
		CreatedAt: at.UTC(),
	}
	err := v.db.WithContext(ctx).Create(&visit).Error
	if err == nil {
		return &visit, nil
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return nil, fmt.Errorf("failed to record visit for link %d: %w", linkID, repositories.ErrLinkNotFound)
	}

	var count int64
	if countErr := v.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("id = ?", linkID).
		Count(&count).Error; countErr == nil && count == 0 {
		return nil, fmt.Errorf("failed to record visit for link %d: %w", linkID, repositories.ErrLinkNotFound)
	}
	return nil, fmt.Errorf("failed to record visit for link %d: %w", linkID, ConvertErrorType(err))
}

func (v *VisitRepo) CountTotal(ctx context.Context, linkID uint) (int64, error) {
	var total int64
	if err := v.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where("link_id = ?", linkID).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count visits for link %d: %w", linkID, ConvertErrorType(err))
	}
	return total, nil
}

// CountByDay группирует визиты по суткам UTC средствами базы данных.
func (v *VisitRepo) CountByDay(ctx context.Context, linkID uint) ([]repositories.DayCount, error) {
	var rows []struct {
		Day   string
		Total int64
	}
	err := v.db.WithContext(ctx).
		Model(&models.Visit{}).
		Select(v.dayExpr()+" AS day, COUNT(*) AS total").
		Where("link_id = ?", linkID).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group visits for link %d: %w", linkID, ConvertErrorType(err))
	}

	result := make([]repositories.DayCount, 0, len(rows))
	for _, row := range rows {
		day, parseErr := time.Parse(dayLayout, row.Day)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse day %q: %w", row.Day, parseErr)
		}
		result = append(result, repositories.DayCount{Day: day, Count: row.Total})
	}
	return result, nil
}

// dayExpr выражение, приводящее created_at к строке YYYY-MM-DD в UTC для текущего диалекта.
func (v *VisitRepo) dayExpr() string {
	if v.db.Dialector.Name() == "postgres" {
		return "to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	}
	return "strftime('%Y-%m-%d', created_at)"
}
