package sql

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// ConvertErrorType оборачивает ошибку gorm в ошибку уровня репозитория, сохраняя исходный текст.
func ConvertErrorType(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", repositories.ErrNotFound, err.Error())
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %s", repositories.ErrLinkNotFound, err.Error())
	default:
		return fmt.Errorf("%w: %s", repositories.ErrUnknown, err.Error())
	}
}
