// Package response writes JSON responses in the wire format the frontend
// expects: payloads are serialised as-is (no envelope), errors carry a single
// terse "message" field. Internal error detail never leaves the server.
package response

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON sends a 200 response with data serialised as the body.
func JSON(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, data)
}

// Created sends a 201 response with data serialised as the body.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, data)
}

// NoContent sends an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends a JSON error response: {"message": "..."}.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"message": message})
}

// NotFound sends a 404 with the given message.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// BadRequest sends a 400 with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Internal sends a generic 500. The caller is expected to have logged the
// underlying error already; detail is never exposed to clients.
func Internal(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
