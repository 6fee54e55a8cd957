package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrInvalidBody reports a request body that is not the expected JSON shape.
var ErrInvalidBody = errors.New("httpx: invalid request body")

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Credential endpoints must never have their responses cached.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON decodes a JSON request body into v. The body is capped at 1 MiB;
// nothing this service accepts is legitimately larger. Unknown fields are
// tolerated so clients can send superset payloads.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		return ErrInvalidBody
	}
	return nil
}
