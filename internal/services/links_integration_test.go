package services

import (
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/repositories"
	"github.com/fsdevblog/shortlinks/internal/repositories/memstore"
	"github.com/fsdevblog/shortlinks/internal/slug"
)

func newMemoryLinkService(opts ...func(*LinkServiceOptions)) *LinkService {
	store := db.NewMemStorage()
	return NewLinkService(memstore.NewLinkRepo(store), memstore.NewVisitRepo(store), slug.New(), opts...)
}

func TestLinkService_GeneratedSlugsAreUnique(t *testing.T) {
	svc := newMemoryLinkService()
	seen := make(map[string]struct{})

	for range 200 {
		view, err := svc.Create(t.Context(), nil, gofakeit.URL()+"/"+gofakeit.UUID())
		require.NoError(t, err)
		assert.Len(t, view.Slug, slug.Length)
		assert.True(t, slug.IsURLSafe(view.Slug))

		_, dup := seen[view.Slug]
		assert.False(t, dup, "slug %s reused", view.Slug)
		seen[view.Slug] = struct{}{}
	}
}

func TestLinkService_ConcurrentSameURL(t *testing.T) {
	svc := newMemoryLinkService()
	const workers = 32
	url := gofakeit.URL()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
		losers  []string
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view, err := svc.Create(t.Context(), nil, url)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, view.Slug)
				return
			}
			var dup *DuplicateURLError
			if assert.ErrorAs(t, err, &dup) {
				losers = append(losers, dup.ExistingSlug)
			}
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1)
	require.Len(t, losers, workers-1)
	for _, s := range losers {
		assert.Equal(t, winners[0], s)
	}
}

func TestLinkService_VisitCountsAreExact(t *testing.T) {
	svc := newMemoryLinkService()
	ctx := t.Context()

	first, err := svc.Create(ctx, nil, "https://example.com/first")
	require.NoError(t, err)
	second, err := svc.Create(ctx, nil, "https://example.com/second")
	require.NoError(t, err)

	const n = 40
	var wg sync.WaitGroup
	for i := range 2 * n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			target := first.Slug
			if i%2 == 1 {
				target = second.Slug
			}
			_, resolveErr := svc.ResolveAndRecordVisit(ctx, target)
			assert.NoError(t, resolveErr)
		}()
	}
	wg.Wait()

	for _, s := range []string{first.Slug, second.Slug} {
		view, getErr := svc.Get(ctx, s, true)
		require.NoError(t, getErr)
		assert.EqualValues(t, n, view.Stats.TotalVisits)
	}

	_, err = svc.ResolveAndRecordVisit(ctx, "unknown")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestLinkService_HistogramScenario(t *testing.T) {
	var now time.Time
	svc := newMemoryLinkService(WithClock(func() time.Time { return now }))
	ctx := t.Context()

	now = time.Date(2017, 12, 31, 0, 0, 0, 0, time.UTC)
	view, err := svc.Create(ctx, nil, "https://long.url.com/shorten/me")
	require.NoError(t, err)

	for _, at := range []time.Time{
		time.Date(2018, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2018, 1, 1, 18, 0, 0, 0, time.UTC),
		time.Date(2018, 1, 3, 0, 30, 0, 0, time.UTC),
	} {
		now = at
		_, err = svc.ResolveAndRecordVisit(ctx, view.Slug)
		require.NoError(t, err)
	}

	got, err := svc.Get(ctx, view.Slug, true)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.Stats.TotalVisits)
	assert.Equal(t, []repositories.DayCount{
		{Day: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), Count: 2},
		{Day: time.Date(2018, 1, 3, 0, 0, 0, 0, time.UTC), Count: 1},
	}, got.Stats.VisitsByDay)
}

func TestLinkService_HistogramProperties(t *testing.T) {
	base := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	properties := gopter.NewProperties(nil)

	properties.Property("histogram matches inserted visits", prop.ForAll(
		func(offsets []int) bool {
			var now time.Time
			svc := newMemoryLinkService(WithClock(func() time.Time { return now }))
			ctx := t.Context()

			now = base
			view, err := svc.Create(ctx, nil, "https://example.com")
			if err != nil {
				return false
			}

			want := make(map[time.Time]int64)
			for _, minutes := range offsets {
				now = base.Add(time.Duration(minutes) * time.Minute)
				want[repositories.TruncateDay(now)]++
				if _, err = svc.ResolveAndRecordVisit(ctx, view.Slug); err != nil {
					return false
				}
			}

			got, err := svc.Get(ctx, view.Slug, true)
			if err != nil || got.Stats.TotalVisits != int64(len(offsets)) || len(got.Stats.VisitsByDay) != len(want) {
				return false
			}
			for i, bucket := range got.Stats.VisitsByDay {
				if bucket.Count == 0 || want[bucket.Day] != bucket.Count {
					return false
				}
				if i > 0 && !got.Stats.VisitsByDay[i-1].Day.Before(bucket.Day) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 10*24*60)),
	))

	properties.TestingRun(t)
}
