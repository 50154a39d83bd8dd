package transport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/pkg/logger"
	"github.com/go-chi/chi"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// ErrorResponse is the single error envelope of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by mutations that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes {"error": message}
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.WriteJSON(w, status, ErrorResponse{Error: message})
}

func (h *BaseHandler) WriteMessage(w http.ResponseWriter, status int, message string) {
	h.WriteJSON(w, status, MessageResponse{Message: message})
}

// HandleServiceError writes client errors verbatim. Anything else is logged
// and reported with the operation's generic message.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if appErr, ok := internal.IsAppError(err); ok && appErr.StatusCode < http.StatusInternalServerError {
		h.WriteError(w, appErr.StatusCode, appErr.Message)
		return
	}
	logger.From(r.Context()).ErrorContext(r.Context(), fallback, "error", err, "path", r.URL.Path)
	h.WriteError(w, http.StatusInternalServerError, fallback)
}

// DecodeJSON reads the request body into dst. An empty body decodes to the zero value.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Body == nil {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// PathID parses a positive integer URL parameter. On failure it writes a 400
// with the given message and returns false.
func (h *BaseHandler) PathID(w http.ResponseWriter, r *http.Request, name, invalidMessage string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, invalidMessage)
		return 0, false
	}
	return id, true
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[7:])
}
