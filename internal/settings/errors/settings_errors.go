package settingserrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Setting not found",
		http.StatusNotFound,
	)
	ErrInvalidKey = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid setting key",
		http.StatusBadRequest,
	)
)
