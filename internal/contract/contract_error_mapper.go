package contract

import (
	"errors"

	contracterrors "hr-backoffice/internal/contract/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contracterrors.ErrContractNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return contracterrors.ErrEmployeeNotFound
	}

	return err
}
