package services

import (
	"context"
	"fmt"
	"time"
)

// defaultPingTimeout ограничивает проверку, если у входящего контекста нет дедлайна.
const defaultPingTimeout = 2 * time.Second

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingService проверяет, что хранилище ссылок отвечает.
type PingService struct {
	storage Pinger
}

func NewPingService(storage Pinger) *PingService {
	return &PingService{storage: storage}
}

func (s *PingService) CheckConnection(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultPingTimeout)
		defer cancel()
	}
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("ping storage: %w", err)
	}
	return nil
}
