package sql

import (
	"fmt"

	"github.com/fsdevblog/linkward/internal/repositories"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// convertErrorType конвертирует ошибки gorm в общие ошибки уровня репозитория.
//
// Преобразования ошибок:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}

	return fmt.Errorf("%w: %s", nativeErr, err.Error())
}
