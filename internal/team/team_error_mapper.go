package team

import (
	"errors"

	teamerrors "hr-backoffice/internal/team/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return teamerrors.ErrMemberNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_team_member_email" {
				return teamerrors.ErrEmailAlreadyUsed
			}
		case "23503":
			return teamerrors.ErrEmployeeNotFound
		}
	}

	return err
}
