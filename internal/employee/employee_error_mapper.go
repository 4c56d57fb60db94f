package employee

import (
	"errors"

	employeeerrors "hr-backoffice/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_employee_cpf":
			return employeeerrors.ErrCPFAlreadyExists
		case "uq_employee_registration_code":
			return employeeerrors.ErrRegistrationCodeAlreadyExists
		}
	}

	return err
}
