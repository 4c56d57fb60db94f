package uploaderrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrUploadNotFound = apperror.New(
		apperror.CodeNotFound,
		"Upload not found",
		http.StatusNotFound,
	)
	ErrInvalidUploadID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid upload ID",
		http.StatusBadRequest,
	)
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A file is required",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"The file exceeds the maximum allowed size",
		http.StatusRequestEntityTooLarge,
	)
)
