package api

import (
	"net/http"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/pkg/resp"
)

// StatusFromError maps an error taxonomy bucket to an HTTP status.
func StatusFromError(err error) int {
	switch gameerr.KindOf(err) {
	case gameerr.KindValidation:
		return http.StatusBadRequest
	case gameerr.KindNotFound:
		return http.StatusNotFound
	case gameerr.KindFairness:
		return http.StatusConflict
	case gameerr.KindAccounting:
		return http.StatusUnprocessableEntity
	case gameerr.KindConfig:
		return http.StatusForbidden
	case gameerr.KindAuthorization:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// WriteServiceError renders a service error with its mapped status.
func WriteServiceError(w http.ResponseWriter, err error) {
	resp.WriteError(w, StatusFromError(err), err)
}
