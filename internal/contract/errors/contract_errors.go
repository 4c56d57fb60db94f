package contracterrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrContractNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contract not found",
		http.StatusNotFound,
	)
	ErrInvalidContractID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid contract ID",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The referenced employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)
)
