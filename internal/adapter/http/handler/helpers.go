package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"net/url"
	"strings"

	t "github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return errors.New("failed to encode json")
	}

	js = append(js, '\n')

	maps.Copy(w.Header(), headers)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// readString returns the trimmed query value of key, or def when it is empty.
func readString(qs url.Values, key string, def string) string {
	s := strings.TrimSpace(qs.Get(key))
	if s == "" {
		return def
	}
	return s
}

func GetCode(err error) int {
	switch {
	case IsOneOf(err, t.ErrInvalidDate, t.ErrInvalidFormat):
		return http.StatusUnprocessableEntity
	case IsOneOf(err, t.ErrUnknownChart):
		return http.StatusNotFound
	case IsOneOf(err, t.ErrDataNotFound):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func IsOneOf(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
