// Package api provides the JSON response envelope shared by every endpoint:
// {"success": true, "data": ...} or {"success": false, "error": "..."}.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// ErrEmptyBody is returned by DecodeObject when the request carries no JSON object.
var ErrEmptyBody = errors.New("empty request body")

// Response is the envelope written by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// WriteJSON writes any value as a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, log zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteSuccess writes {"success": true, "data": data}.
func WriteSuccess(w http.ResponseWriter, status int, data interface{}, log zerolog.Logger) {
	WriteJSON(w, status, Response{Success: true, Data: data}, log)
}

// WriteError writes {"success": false, "error": message}.
func WriteError(w http.ResponseWriter, status int, message string, log zerolog.Logger) {
	WriteJSON(w, status, Response{Success: false, Error: message}, log)
}

// DecodeObject decodes a JSON object body. Numbers are kept as json.Number.
// A missing body, "null" or an empty object yields ErrEmptyBody.
func DecodeObject(r *http.Request) (map[string]interface{}, error) {
	if r.Body == nil {
		return nil, ErrEmptyBody
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body map[string]interface{}
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBody
		}
		return nil, err
	}
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}
