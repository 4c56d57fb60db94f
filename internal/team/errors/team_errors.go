package teamerrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"Team member not found",
		http.StatusNotFound,
	)
	ErrInvalidMemberID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid team member ID",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyUsed = apperror.New(
		apperror.CodeConflict,
		"A team member with this email already exists",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The referenced employee does not exist",
		http.StatusBadRequest,
	)
)
