package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// APIClient handles communication with the GardenBot core API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration

	registered *registeredCache
}

// APIError is a non-2xx response from the core API
type APIError struct {
	Status    int
	Message   string
	HoursLeft int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return "API error: " + e.Message
	}
	return fmt.Sprintf("API returned status: %d", e.Status)
}

// IsCooldown reports whether the error is a care cooldown rejection
func (e *APIError) IsCooldown() bool { return e.Status == http.StatusTooManyRequests }

// NotFound reports whether the user has no plant
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

// StartPlantResult is the core API's answer to a start request
type StartPlantResult struct {
	Message string             `json:"message"`
	Created bool               `json:"created"`
	Plant   domain.PlantRecord `json:"plant"`
	Stage   domain.StageInfo   `json:"stage"`
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: DefaultAPITimeout},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
		registered: newRegisteredCache(DefaultRegisteredCacheSize, DefaultRegisteredCacheTTL),
	}
}

// doRequest performs an HTTP request and decodes a 2xx JSON body into out.
// Only idempotent requests are retried, and only on transport errors and 5xx.
// Care actions must not be retried: a lost response may hide an applied write.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body, out interface{}, idempotent bool) error {
	var reqBody []byte
	if body != nil {
		var err error
		if reqBody, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	attempts := 1
	if idempotent {
		attempts += c.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + time.Duration(rand.Int64N(int64(c.RetryDelay/4)+1))
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = c.once(ctx, method, path, reqBody, out)
		if lastErr == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(lastErr, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			return lastErr
		}
		slog.Warn("API request failed", "error", lastErr, "attempt", attempt, "path", path)
	}

	if attempts > 1 {
		return fmt.Errorf("max retries exceeded: %w", lastErr)
	}
	return lastErr
}

func (c *APIClient) once(ctx context.Context, method, path string, reqBody []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error     string `json:"error"`
			HoursLeft int    `json:"hours_left"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &APIError{Status: resp.StatusCode, Message: errResp.Error, HoursLeft: errResp.HoursLeft}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// StartPlant plants a seed or returns the existing plant. Idempotent.
func (c *APIClient) StartPlant(ctx context.Context, userID, displayName, groupID string) (*StartPlantResult, error) {
	req := map[string]string{
		"user_id":      userID,
		"display_name": displayName,
		"group_id":     groupID,
	}
	var res StartPlantResult
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/plant/start", req, &res, true); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetPlant returns the plant status view
func (c *APIClient) GetPlant(ctx context.Context, userID string) (*domain.PlantStatus, error) {
	params := url.Values{}
	params.Set("user_id", userID)

	var status domain.PlantStatus
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/plant?"+params.Encode(), nil, &status, true); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			c.registered.forget(userID)
		}
		return nil, err
	}
	return &status, nil
}

// Care waters or feeds the plant. Never retried.
func (c *APIClient) Care(ctx context.Context, action domain.CareAction, userID string) (*domain.CareResult, error) {
	req := map[string]string{"user_id": userID}

	var result domain.CareResult
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/plant/"+string(action), req, &result, false); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			c.registered.forget(userID)
		}
		return nil, err
	}
	return &result, nil
}

// Leaderboard returns the group's ranked plants
func (c *APIClient) Leaderboard(ctx context.Context, groupID string, limit int) ([]domain.LeaderboardEntry, error) {
	params := url.Values{}
	params.Set("group_id", groupID)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp struct {
		Entries []domain.LeaderboardEntry `json:"entries"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/plant/leaderboard?"+params.Encode(), nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// Info returns the game rules
func (c *APIClient) Info(ctx context.Context) (*domain.GardenInfo, error) {
	var info domain.GardenInfo
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/info", nil, &info, true); err != nil {
		return nil, err
	}
	return &info, nil
}

// Healthz reports whether the core API answers its liveness probe
func (c *APIClient) Healthz(ctx context.Context) bool {
	c2 := *c
	c2.MaxRetries = 0
	return c2.doRequest(ctx, http.MethodGet, "/healthz", nil, nil, false) == nil
}
