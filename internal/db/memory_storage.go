package db

import (
	"context"

	"github.com/fsdevblog/shortlinks/internal/db/memory"
)

type MemoryStorage struct {
	*memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		MStorage: memory.NewMemStorage(),
	}
}

// Ping in-memory хранилище доступно всегда, пока жив контекст.
func (m *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err() //nolint:wrapcheck
}
