package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/password-vault/internal/service"
	"github.com/MKhiriev/password-vault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrEmptyRequiredFields:     http.StatusBadRequest,
	service.ErrNoRecordID:              http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusUnauthorized,
	store.ErrRecordNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// clientSafeErrors may have their message exposed in the response envelope.
// Everything else is reported with a generic per-endpoint message so internal
// details never leak to clients.
var clientSafeErrors = []error{
	service.ErrEmptyRequiredFields,
	service.ErrNoRecordID,
	store.ErrRecordNotFound,
}

func errorMessage(err error, fallback string) string {
	for _, target := range clientSafeErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return fallback
}
