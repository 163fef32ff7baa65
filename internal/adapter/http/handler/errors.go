package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/i18n"
)

func errorResponse(w http.ResponseWriter, status int, message any) {
	env := envelope{"error": message}

	// Write the response using the writeJSON() helper. If this happens to return an
	// error then log it, and fall back to sending the client an empty response with a
	// 500 Internal Server Error status code.
	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

// failedValidationResponse returns 422 UnprocessableEntity status.
// The request was well formed but one of its parameters cannot be used.
func failedValidationResponse(w http.ResponseWriter, errors map[string]string) {
	errorResponse(w, http.StatusUnprocessableEntity, errors)
}

// notFoundResponse returns 404 NotFound status
func notFoundResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusNotFound, message)
}

// internalErrorResponse returns 500 InternalServerError status
func internalErrorResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusInternalServerError, message)
}

// dataErrorMessage turns a dataset failure into the text shown to users.
func dataErrorMessage(err error, tr *i18n.Translator) string {
	var notFound *types.DataNotFoundError
	if errors.As(err, &notFound) {
		return tr.T(i18n.ErrDataNotFound, notFound.HourlyPath, notFound.DailyPath)
	}

	var loadErr *types.DataLoadError
	if errors.As(err, &loadErr) {
		return tr.T(i18n.ErrDataLoad, fmt.Sprintf("%s: %v", loadErr.Path, loadErr.Cause))
	}

	return tr.T(i18n.ErrDataLoad, err.Error())
}
