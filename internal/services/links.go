package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
	"github.com/fsdevblog/shortlinks/internal/slug"
)

// DefaultMaxSlugAttempts сколько раз пробуем сгенерировать свободный слаг.
const DefaultMaxSlugAttempts = 10

// LinkView представление ссылки для клиента.
type LinkView struct {
	Slug      string
	URL       string
	CreatedAt time.Time
	// Stats заполняется только по запросу.
	Stats *LinkStats
}

// LinkStats статистика визитов, считается при каждом запросе.
type LinkStats struct {
	TotalVisits int64
	VisitsByDay []repositories.DayCount
}

// LinkServiceOptions настройки сервиса ссылок.
type LinkServiceOptions struct {
	Logger          *zap.Logger
	Clock           func() time.Time
	MaxSlugAttempts int
	Metrics         MetricsRecorder
}

func WithLogger(logger *zap.Logger) func(*LinkServiceOptions) {
	return func(o *LinkServiceOptions) {
		o.Logger = logger
	}
}

func WithClock(clock func() time.Time) func(*LinkServiceOptions) {
	return func(o *LinkServiceOptions) {
		o.Clock = clock
	}
}

func WithMaxSlugAttempts(n int) func(*LinkServiceOptions) {
	return func(o *LinkServiceOptions) {
		if n > 0 {
			o.MaxSlugAttempts = n
		}
	}
}

func WithMetrics(m MetricsRecorder) func(*LinkServiceOptions) {
	return func(o *LinkServiceOptions) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// LinkService создает ссылки, разрешает слаги в url и собирает статистику визитов.
type LinkService struct {
	links   LinkRepository
	visits  VisitRepository
	slugs   SlugGenerator
	logger  *zap.Logger
	clock   func() time.Time
	retries int
	metrics MetricsRecorder
}

// NewLinkService создает сервис ссылок.
//
// Параметры:
//   - links: репозиторий ссылок
//   - visits: репозиторий визитов
//   - slugs: генератор слагов
//   - opts: дополнительные настройки
//
// Возвращает:
//   - *LinkService: сервис ссылок
func NewLinkService(
	links LinkRepository,
	visits VisitRepository,
	slugs SlugGenerator,
	opts ...func(*LinkServiceOptions),
) *LinkService {
	options := LinkServiceOptions{
		Logger:          zap.NewNop(),
		Clock:           time.Now,
		MaxSlugAttempts: DefaultMaxSlugAttempts,
		Metrics:         nopMetrics{},
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &LinkService{
		links:   links,
		visits:  visits,
		slugs:   slugs,
		logger:  options.Logger.With(zap.String("module", "services/links")),
		clock:   options.Clock,
		retries: options.MaxSlugAttempts,
		metrics: options.Metrics,
	}
}

// Create создает короткую ссылку на rawURL.
//
// Параметры:
//   - ctx: контекст выполнения
//   - requestedSlug: желаемый слаг; nil означает сгенерировать случайный
//   - rawURL: исходный url, сравнивается побайтно
//
// Возвращает:
//   - *LinkView: созданная ссылка
//   - error: *ValidationError, *DuplicateURLError, ErrSlugTaken, ErrSlugSpaceExhausted или ErrUnknown
func (s *LinkService) Create(ctx context.Context, requestedSlug *string, rawURL string) (*LinkView, error) {
	if msgs := validateCreate(requestedSlug, rawURL); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	// Быстрый путь для уже сокращенного url. Гонку двух создателей решает уникальный индекс ниже.
	existing, err := s.links.GetByURL(ctx, rawURL)
	switch {
	case err == nil:
		return nil, &DuplicateURLError{ExistingSlug: existing.Slug}
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, s.unknown(err, "lookup link by url")
	}

	if requestedSlug != nil {
		return s.persist(ctx, *requestedSlug, rawURL)
	}

	for range s.retries {
		candidate, genErr := s.slugs.Generate()
		if genErr != nil {
			return nil, s.unknown(genErr, "generate slug")
		}
		if IsReservedSlug(candidate) {
			continue
		}
		view, persistErr := s.persist(ctx, candidate, rawURL)
		if errors.Is(persistErr, ErrSlugTaken) {
			s.metrics.SlugCollision()
			s.logger.Debug("generated slug collision, retrying", zap.String("slug", candidate))
			continue
		}
		return view, persistErr
	}

	s.logger.Error("slug space exhausted", zap.Int("attempts", s.retries))
	return nil, ErrSlugSpaceExhausted
}

// persist выполняет одну попытку вставки и переводит конфликты уникальности в ошибки сервиса.
func (s *LinkService) persist(ctx context.Context, slugValue, rawURL string) (*LinkView, error) {
	link := models.Link{
		Slug:      slugValue,
		URL:       rawURL,
		CreatedAt: s.clock().UTC(),
	}
	err := s.links.Create(ctx, &link)
	switch {
	case err == nil:
		s.metrics.LinkCreated()
		return toView(&link), nil
	case errors.Is(err, repositories.ErrSlugTaken):
		return nil, ErrSlugTaken
	case errors.Is(err, repositories.ErrURLTaken):
		// Ссылку создал конкурентный запрос, отдаем его слаг.
		winner, getErr := s.links.GetByURL(ctx, rawURL)
		if getErr != nil {
			return nil, s.unknown(getErr, "lookup concurrently created link")
		}
		return nil, &DuplicateURLError{ExistingSlug: winner.Slug}
	default:
		return nil, s.unknown(err, "create link")
	}
}

// ResolveAndRecordVisit возвращает url для слага и записывает визит.
// Неожиданная ошибка записи визита логируется, но редирект не блокирует.
func (s *LinkService) ResolveAndRecordVisit(ctx context.Context, slugValue string) (string, error) {
	link, err := s.getBySlug(ctx, slugValue)
	if err != nil {
		return "", err
	}

	_, recErr := s.visits.Record(ctx, link.ID, s.clock().UTC())
	switch {
	case recErr == nil:
		s.metrics.VisitRecorded()
	case errors.Is(recErr, repositories.ErrLinkNotFound):
		// Ссылку удалили между поиском и записью визита.
		return "", fmt.Errorf("%w: link %s disappeared", ErrRecordNotFound, slugValue)
	default:
		s.metrics.VisitRecordFailed()
		s.logger.Error("failed to record visit",
			zap.String("slug", slugValue),
			zap.Uint("link_id", link.ID),
			zap.Error(recErr),
		)
	}
	return link.URL, nil
}

// Get возвращает ссылку по слагу, со статистикой визитов если includeStats.
func (s *LinkService) Get(ctx context.Context, slugValue string, includeStats bool) (*LinkView, error) {
	link, err := s.getBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	view := toView(link)
	if !includeStats {
		return view, nil
	}

	var stats LinkStats
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, countErr := s.visits.CountTotal(gCtx, link.ID)
		if countErr != nil {
			return fmt.Errorf("count total: %w", countErr)
		}
		stats.TotalVisits = total
		return nil
	})
	g.Go(func() error {
		byDay, countErr := s.visits.CountByDay(gCtx, link.ID)
		if countErr != nil {
			return fmt.Errorf("count by day: %w", countErr)
		}
		stats.VisitsByDay = byDay
		return nil
	})
	if waitErr := g.Wait(); waitErr != nil {
		return nil, s.unknown(waitErr, "collect visit stats")
	}
	view.Stats = &stats
	return view, nil
}

func (s *LinkService) getBySlug(ctx context.Context, slugValue string) (*models.Link, error) {
	if slugValue == "" || !slug.IsURLSafe(slugValue) {
		return nil, fmt.Errorf("%w: slug %q", ErrRecordNotFound, slugValue)
	}
	link, err := s.links.GetBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: slug %s", ErrRecordNotFound, slugValue)
		}
		return nil, s.unknown(err, "lookup link by slug")
	}
	return link, nil
}

// unknown логирует неожиданную ошибку хранилища и оборачивает её в ErrUnknown.
// Отмена контекста сохраняется в цепочке, чтобы вызывающий мог её распознать.
func (s *LinkService) unknown(err error, op string) error {
	if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		s.logger.Error(op, zap.Error(err))
	}
	return fmt.Errorf("%w: %s: %w", ErrUnknown, op, err)
}

func validateCreate(requestedSlug *string, rawURL string) []string {
	var msgs []string
	switch {
	case strings.TrimSpace(rawURL) == "":
		msgs = append(msgs, MsgURLBlank)
	case utf8.RuneCountInString(rawURL) > MaxURLLength:
		msgs = append(msgs, MsgURLTooLong)
	}
	if requestedSlug != nil {
		switch {
		case strings.TrimSpace(*requestedSlug) == "":
			msgs = append(msgs, MsgSlugBlank)
		case !slug.IsURLSafe(*requestedSlug):
			msgs = append(msgs, MsgSlugInvalid)
		case len(*requestedSlug) > MaxSlugLength:
			msgs = append(msgs, MsgSlugTooLong)
		case IsReservedSlug(*requestedSlug):
			msgs = append(msgs, MsgSlugReserved)
		}
	}
	return msgs
}

func toView(link *models.Link) *LinkView {
	return &LinkView{
		Slug:      link.Slug,
		URL:       link.URL,
		CreatedAt: link.CreatedAt,
	}
}

type nopMetrics struct{}

func (nopMetrics) LinkCreated()       {}
func (nopMetrics) SlugCollision()     {}
func (nopMetrics) VisitRecorded()     {}
func (nopMetrics) VisitRecordFailed() {}
