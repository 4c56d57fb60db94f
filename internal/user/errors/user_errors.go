package usererrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"A user with this email already exists",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidConfirmationCode = apperror.New(
		apperror.CodeForbidden,
		"Invalid confirmation code",
		http.StatusForbidden,
	)
	// Returned when MASTER_DELETE_HASH is not configured. Deletion must
	// refuse outright in that case rather than fall back to any default.
	ErrDeleteNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"User deletion is not configured on this server",
		http.StatusServiceUnavailable,
	)
)
