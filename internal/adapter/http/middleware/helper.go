package middleware

import (
	"encoding/json"
	"net/http"

	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
)

const msgInternal = "the server encountered a problem and could not process your request"

// problem is the JSON body of a response the middleware answers itself.
type problem struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// abort answers r with status and a JSON problem carrying the request id, so a
// user report can be matched to the logged failure.
func abort(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(problem{
		Error:     message,
		RequestID: wrap.RequestID(r.Context()),
	})
}
