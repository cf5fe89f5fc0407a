package usecase

import (
	"errors"

	"github.com/jhoicas/stoqr-api/internal/domain"
)

// repoErr deja pasar los errores de dominio y envuelve el resto como DependencyError.
func repoErr(op string, err error) error {
	for _, target := range []error{
		domain.ErrNotFound,
		domain.ErrUserNotFound,
		domain.ErrConflict,
		domain.ErrEmailAlreadyExists,
		domain.ErrInvalidInput,
	} {
		if errors.Is(err, target) {
			return err
		}
	}
	return domain.Dependency(op, err)
}
