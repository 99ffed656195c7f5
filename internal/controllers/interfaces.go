package controllers

import (
	"context"

	"github.com/fsdevblog/shortlinks/internal/services"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// LinkShortener операции сервиса ссылок, нужные HTTP слою.
type LinkShortener interface {
	// Create создает ссылку. requestedSlug == nil означает сгенерировать слаг.
	Create(ctx context.Context, requestedSlug *string, rawURL string) (*services.LinkView, error)
	// ResolveAndRecordVisit возвращает url для слага и записывает визит.
	ResolveAndRecordVisit(ctx context.Context, slug string) (string, error)
	Get(ctx context.Context, slug string, includeStats bool) (*services.LinkView, error)
}
