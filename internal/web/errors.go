package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details for debugging (server-side)
//   - Returned to clients as user-friendly messages with action suggestions
//   - Formatted appropriately based on request type (HTMX, JSON, or HTML)
//
// The error flow:
//  1. Handler encounters an error
//  2. Calls respondError(w, r, err) (status derived from the error type)
//  3. Error is mapped via explore.MapError to get user-friendly message
//  4. Technical error + context is logged with request ID for correlation
//  5. User message is rendered in appropriate format for the client

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/harithais/microbiome-explorer-app/internal/dataset"
	"github.com/harithais/microbiome-explorer-app/internal/explore"
	"github.com/harithais/microbiome-explorer-app/internal/web/templates"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// statusFor maps domain errors to HTTP status codes.
//
// Schema problems and uploads with zero matches are unprocessable input
// (422); missing or empty files are malformed requests (400); unknown
// sessions are 404. Anything unrecognized is a server fault.
func statusFor(err error) int {
	switch {
	case dataset.IsSchemaError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, explore.ErrNoMatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dataset.ErrEmptyFile):
		return http.StatusBadRequest
	case errors.Is(err, explore.ErrNoFile):
		return http.StatusBadRequest
	case errors.Is(err, explore.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, explore.ErrTooManySessions):
		return http.StatusServiceUnavailable
	case isMaxBytes(err):
		return http.StatusRequestEntityTooLarge
	case strings.HasPrefix(err.Error(), "invalid csv"),
		strings.HasPrefix(err.Error(), "invalid xlsx"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// isMaxBytes reports whether err came from http.MaxBytesReader.
func isMaxBytes(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// respondError handles error responses with user-friendly messages.
// It logs the technical error server-side and returns an appropriate response
// based on the request type (HTMX, JSON, or HTML).
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := statusFor(err)
	userMsg := explore.MapError(err)

	// Get request ID for correlation
	requestID := middleware.GetReqID(r.Context())

	// Log the technical error with context
	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", requestID,
	)

	// Return user-friendly error based on request type
	if isHTMX(r) {
		renderErrorPartial(w, r, userMsg, statusCode)
	} else if wantsJSON(r) {
		respondErrorJSON(w, userMsg, statusCode)
	} else {
		respondErrorHTML(w, userMsg, statusCode)
	}
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg explore.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}

// respondErrorHTML writes a plain HTML error response.
func respondErrorHTML(w http.ResponseWriter, msg explore.UserMessage, statusCode int) {
	http.Error(w, msg.Message+" ("+msg.Code+")", statusCode)
}

// renderErrorPartial renders an HTMX-compatible error fragment.
func renderErrorPartial(w http.ResponseWriter, r *http.Request, msg explore.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w)
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	contentType := r.Header.Get("Content-Type")

	// Check Accept header
	if strings.Contains(accept, "application/json") {
		return true
	}

	// Check if request is sending JSON
	if strings.Contains(contentType, "application/json") {
		return true
	}

	// API routes default to JSON
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}

	return false
}
