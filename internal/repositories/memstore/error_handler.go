package memstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/shortlinks/internal/db/memory"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// convertErrorType конвертирует специфичные ошибки хранилища в памяти
// в общие ошибки уровня репозитория.
//
// Параметры:
//   - err: исходная ошибка
//
// Возвращает:
//   - error: преобразованная ошибка или nil, если входная ошибка nil
//
// Ошибки отмены контекста и ошибки репозитория пробрасываются как есть.
func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, memory.ErrNotFound):
		return fmt.Errorf("%w: %s", repositories.ErrNotFound, err.Error())
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, repositories.ErrSlugTaken),
		errors.Is(err, repositories.ErrURLTaken),
		errors.Is(err, repositories.ErrLinkNotFound):
		return err
	default:
		return fmt.Errorf("%w: %s", repositories.ErrUnknown, err.Error())
	}
}
