package smocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fsdevblog/shortlinks/internal/services"
)

type LinkMock struct {
	mock.Mock
}

func (l *LinkMock) Create(ctx context.Context, requestedSlug *string, rawURL string) (*services.LinkView, error) {
	args := l.Called(ctx, requestedSlug, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*services.LinkView), args.Error(1) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) ResolveAndRecordVisit(ctx context.Context, slug string) (string, error) {
	args := l.Called(ctx, slug)
	return args.String(0), args.Error(1) //nolint:wrapcheck
}

func (l *LinkMock) Get(ctx context.Context, slug string, includeStats bool) (*services.LinkView, error) {
	args := l.Called(ctx, slug, includeStats)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*services.LinkView), args.Error(1) //nolint:wrapcheck,errcheck
}

type PingMock struct {
	mock.Mock
}

func (p *PingMock) CheckConnection(ctx context.Context) error {
	return p.Called(ctx).Error(0) //nolint:wrapcheck
}
