// Package httpjson provides the JSON request/response conventions for
// the API surface: decode with unknown-field tolerance, encode with a
// status code, and a uniform {"error": ...} envelope for failures.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// errorBody is the uniform error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteNull writes a JSON null body with status 200. Used where a
// lookup miss is reported as an empty result rather than an error.
func WriteNull(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("null\n"))
}

// WriteError writes the {"error": message} envelope with the given
// status code.
func WriteError(w http.ResponseWriter, status int, message string) {
	Write(w, status, errorBody{Error: message})
}

// Decode reads the request body into v. Returns an error suitable for
// a 400 response when the body is not valid JSON.
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
