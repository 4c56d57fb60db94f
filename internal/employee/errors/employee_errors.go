package employeeerrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrCPFAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with this CPF already exists",
		http.StatusConflict,
	)
	ErrRegistrationCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with this registration code already exists",
		http.StatusConflict,
	)
)
