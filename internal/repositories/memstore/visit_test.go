package memstore

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

func TestVisitRepo_Record(t *testing.T) {
	store := db.NewMemStorage()
	links := NewLinkRepo(store)
	visits := NewVisitRepo(store)
	ctx := t.Context()

	link := models.Link{Slug: "abc", URL: "https://example.com"}
	require.NoError(t, links.Create(ctx, &link))

	at := time.Date(2018, 1, 1, 12, 0, 0, 0, time.UTC)
	visit, err := visits.Record(ctx, link.ID, at)
	require.NoError(t, err)
	assert.Equal(t, link.ID, visit.LinkID)
	assert.NotZero(t, visit.ID)

	_, err = visits.Record(ctx, link.ID+100, at)
	require.ErrorIs(t, err, repositories.ErrLinkNotFound)

	total, err := visits.CountTotal(ctx, link.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestVisitRepo_CountByDay(t *testing.T) {
	store := db.NewMemStorage()
	links := NewLinkRepo(store)
	visits := NewVisitRepo(store)
	ctx := t.Context()

	link := models.Link{Slug: "abc", URL: "https://example.com/a"}
	other := models.Link{Slug: "def", URL: "https://example.com/b"}
	require.NoError(t, links.Create(ctx, &link))
	require.NoError(t, links.Create(ctx, &other))

	for _, at := range []time.Time{
		time.Date(2018, 1, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2018, 1, 1, 23, 59, 0, 0, time.UTC),
		time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		_, err := visits.Record(ctx, link.ID, at)
		require.NoError(t, err)
	}
	_, err := visits.Record(ctx, other.ID, time.Date(2018, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	got, err := visits.CountByDay(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, []repositories.DayCount{
		{Day: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), Count: 2},
		{Day: time.Date(2018, 1, 3, 0, 0, 0, 0, time.UTC), Count: 1},
	}, got)

	empty, err := visits.CountByDay(ctx, link.ID+100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestVisitRepo_ConcurrentRecord(t *testing.T) {
	store := db.NewMemStorage()
	links := NewLinkRepo(store)
	visits := NewVisitRepo(store)

	link := models.Link{Slug: "abc", URL: "https://example.com"}
	require.NoError(t, links.Create(t.Context(), &link))

	const n = 64
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := visits.Record(t.Context(), link.ID, time.Now())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	total, err := visits.CountTotal(t.Context(), link.ID)
	require.NoError(t, err)
	assert.EqualValues(t, n, total)
}
