package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

// ValidationErrorResponse lists the offending fields by JSON name
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and runs its
// validate tags. On error the response is already written.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, opName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgUndecodableBody, "op", opName, "error", err)
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := validate.Struct(req); err != nil {
		fields := FormatValidationError(err)
		log.Debug(LogMsgValidationFailed, "op", opName, "fields", fields)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: fields,
		})
		return err
	}
	return nil
}

// GetQueryParam returns a required query parameter. When ok is false the
// 400 has been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		logger.FromContext(r.Context()).Warn("Missing query parameter", "param", name)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, name))
		return "", false
	}
	return value, true
}

// GetIntQueryParam parses an optional integer query parameter.
// A present but malformed value writes a 400 and returns ok=false.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid integer query parameter", "param", name, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return value, true
}
