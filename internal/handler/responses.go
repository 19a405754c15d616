package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/osse101/GardenBot_Go/internal/cooldown"
	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CooldownResponse is returned with 429 when a care action is not yet available
type CooldownResponse struct {
	Error             string            `json:"error"`
	Action            domain.CareAction `json:"action"`
	HoursLeft         int               `json:"hours_left"`
	RetryAfterSeconds int               `json:"retry_after_seconds"`
}

// encodeBuffers holds scratch buffers for response encoding
var encodeBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// respondJSON encodes the payload before writing headers, so an encoding
// failure still yields a clean 500 instead of a truncated body.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped HTTP response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	var cdErr cooldown.ErrOnCooldown
	if errors.As(err, &cdErr) {
		log.Debug(LogMsgCooldownRejected, "op", opName, "action", cdErr.Action, "remaining", cdErr.Remaining)
		retryAfter := int(math.Ceil(cdErr.Remaining.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		respondJSON(w, http.StatusTooManyRequests, CooldownResponse{
			Error:             ErrMsgOnCooldownError,
			Action:            cdErr.Action,
			HoursLeft:         cdErr.HoursLeft(),
			RetryAfterSeconds: retryAfter,
		})
		return
	}

	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceFailed, "op", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceFailed, "op", opName, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgNoPlantError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return http.StatusConflict, ErrMsgConcurrentUpdateError
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPlant),
		errors.Is(err, domain.ErrUnknownCareAction):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
