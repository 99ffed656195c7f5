package sql

import (
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

type RepoSuite struct {
	suite.Suite
	conn   *gorm.DB
	links  *LinkRepo
	visits *VisitRepo
}

func (s *RepoSuite) SetupTest() {
	conn, err := db.NewSQLite(":memory:")
	s.Require().NoError(err)
	s.conn = conn
	s.links = NewLinkRepo(conn)
	s.visits = NewVisitRepo(conn)
}

func (s *RepoSuite) TearDownTest() {
	sqlDB, err := s.conn.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(RepoSuite))
}

func (s *RepoSuite) TestLinkCreate() {
	ctx := s.T().Context()
	link := models.Link{Slug: "abc", URL: "https://example.com/a"}
	s.Require().NoError(s.links.Create(ctx, &link))
	s.NotZero(link.ID)
	s.False(link.CreatedAt.IsZero())

	slugDup := models.Link{Slug: "abc", URL: "https://example.com/b"}
	s.ErrorIs(s.links.Create(ctx, &slugDup), repositories.ErrSlugTaken)

	urlDup := models.Link{Slug: "xyz", URL: "https://example.com/a"}
	s.ErrorIs(s.links.Create(ctx, &urlDup), repositories.ErrURLTaken)

	both := models.Link{Slug: "abc", URL: "https://example.com/a"}
	s.ErrorIs(s.links.Create(ctx, &both), repositories.ErrURLTaken)

	var count int64
	s.Require().NoError(s.conn.Model(&models.Link{}).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *RepoSuite) TestLinkGet() {
	ctx := s.T().Context()
	link := models.Link{Slug: "abc", URL: gofakeit.URL()}
	s.Require().NoError(s.links.Create(ctx, &link))

	bySlug, err := s.links.GetBySlug(ctx, "abc")
	s.Require().NoError(err)
	s.Equal(link.URL, bySlug.URL)

	byURL, err := s.links.GetByURL(ctx, link.URL)
	s.Require().NoError(err)
	s.Equal(link.ID, byURL.ID)

	_, err = s.links.GetBySlug(ctx, "ABC")
	s.ErrorIs(err, repositories.ErrNotFound)
	_, err = s.links.GetByURL(ctx, "https://missing.example.com")
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *RepoSuite) TestLinkCreateConcurrentSameURL() {
	const workers = 10
	url := gofakeit.URL()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		taken   int
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			link := models.Link{Slug: "slug" + string(rune('a'+i)), URL: url}
			err := s.links.Create(s.T().Context(), &link)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
				return
			}
			if s.ErrorIs(err, repositories.ErrURLTaken) {
				taken++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, created)
	s.Equal(workers-1, taken)
}

func (s *RepoSuite) TestVisitRecord() {
	ctx := s.T().Context()
	link := models.Link{Slug: "abc", URL: gofakeit.URL()}
	s.Require().NoError(s.links.Create(ctx, &link))

	visit, err := s.visits.Record(ctx, link.ID, time.Now())
	s.Require().NoError(err)
	s.Equal(link.ID, visit.LinkID)

	_, err = s.visits.Record(ctx, link.ID+100, time.Now())
	s.ErrorIs(err, repositories.ErrLinkNotFound)

	total, err := s.visits.CountTotal(ctx, link.ID)
	s.Require().NoError(err)
	s.EqualValues(1, total)
}

func (s *RepoSuite) TestVisitCountByDay() {
	ctx := s.T().Context()
	link := models.Link{Slug: "abc", URL: gofakeit.URL()}
	s.Require().NoError(s.links.Create(ctx, &link))

	for _, at := range []time.Time{
		time.Date(2018, 1, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2018, 1, 1, 23, 59, 59, 0, time.UTC),
		time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		// 2018-01-02 02:00 в UTC.
		time.Date(2018, 1, 2, 5, 0, 0, 0, time.FixedZone("MSK", 3*60*60)),
	} {
		_, err := s.visits.Record(ctx, link.ID, at)
		s.Require().NoError(err)
	}

	got, err := s.visits.CountByDay(ctx, link.ID)
	s.Require().NoError(err)
	s.Equal([]repositories.DayCount{
		{Day: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), Count: 2},
		{Day: time.Date(2018, 1, 2, 0, 0, 0, 0, time.UTC), Count: 1},
		{Day: time.Date(2018, 1, 3, 0, 0, 0, 0, time.UTC), Count: 1},
	}, got)
}

func (s *RepoSuite) TestVisitsCascadeDelete() {
	ctx := s.T().Context()
	link := models.Link{Slug: "abc", URL: gofakeit.URL()}
	s.Require().NoError(s.links.Create(ctx, &link))
	_, err := s.visits.Record(ctx, link.ID, time.Now())
	s.Require().NoError(err)

	s.Require().NoError(s.conn.Delete(&models.Link{}, link.ID).Error)

	total, err := s.visits.CountTotal(ctx, link.ID)
	s.Require().NoError(err)
	s.Zero(total)
}
