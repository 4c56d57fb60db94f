package documenterrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document not found",
		http.StatusNotFound,
	)
	ErrInvalidDocumentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid document ID",
		http.StatusBadRequest,
	)
	ErrUploadAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"This upload is already linked to another document",
		http.StatusConflict,
	)
	ErrUploadNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The referenced upload does not exist",
		http.StatusBadRequest,
	)
)
