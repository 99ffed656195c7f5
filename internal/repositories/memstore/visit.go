package memstore

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/db/memory"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

func visitPrefix(linkID uint) string {
	return "visits:" + strconv.FormatUint(uint64(linkID), 10) + ":"
}

// VisitRepo репозиторий визитов в памяти.
type VisitRepo struct {
	s *db.MemoryStorage
}

func NewVisitRepo(store *db.MemoryStorage) *VisitRepo {
	return &VisitRepo{
		s: store,
	}
}

// Record добавляет визит по ссылке linkID в момент at. Если ссылки нет,
// возвращается repositories.ErrLinkNotFound.
func (v *VisitRepo) Record(ctx context.Context, linkID uint, at time.Time) (*models.Visit, error) {
	visit := models.Visit{
		LinkID:    linkID,
		CreatedAt: at.UTC(),
	}
	err := v.s.Update(ctx, func(tx *memory.Txn) error {
		if !tx.Exists(linkIDKey(linkID)) {
			return repositories.ErrLinkNotFound
		}
		visit.ID = v.s.NextID()
		key := visitPrefix(linkID) + strconv.FormatUint(uint64(visit.ID), 10)
		return memory.TxSet(tx, key, &visit) //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record visit for link %d: %w", linkID, convertErrorType(err))
	}
	return &visit, nil
}

// CountTotal возвращает общее количество визитов по ссылке.
func (v *VisitRepo) CountTotal(ctx context.Context, linkID uint) (int64, error) {
	visits, err := memory.FilterAll[models.Visit](ctx, v.s.MStorage, visitPrefix(linkID), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits for link %d: %w", linkID, convertErrorType(err))
	}
	return int64(len(visits)), nil
}

// CountByDay группирует визиты по суткам (UTC) в порядке возрастания. Дни без визитов не попадают в результат.
func (v *VisitRepo) CountByDay(ctx context.Context, linkID uint) ([]repositories.DayCount, error) {
	visits, err := memory.FilterAll[models.Visit](ctx, v.s.MStorage, visitPrefix(linkID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to group visits for link %d: %w", linkID, convertErrorType(err))
	}

	buckets := make(map[time.Time]int64)
	for _, visit := range visits {
		buckets[repositories.TruncateDay(visit.CreatedAt)]++
	}

	result := make([]repositories.DayCount, 0, len(buckets))
	for day, count := range buckets {
		result = append(result, repositories.DayCount{Day: day, Count: count})
	}
	slices.SortFunc(result, func(a, b repositories.DayCount) int {
		return a.Day.Compare(b.Day)
	})
	return result, nil
}
