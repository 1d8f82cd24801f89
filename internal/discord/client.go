package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// APIClient handles communication with the Decision Spinner API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// APIError is a non-2xx answer from the API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	return fmt.Sprintf("API returned status: %d", e.Status)
}

type optionsResponse struct {
	Options []domain.Option `json:"options"`
	Count   int             `json:"count"`
}

type historyResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// SpinResponse is a settled spin as returned by POST /spin
type SpinResponse struct {
	domain.SpinResult
	Interstitial string `json:"interstitial,omitempty"`
}

// retryable reports whether a request can be sent again without side
// effects. POST and PATCH may already have been applied when the answer
// was lost.
func retryable(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// doRequest performs an HTTP request with retry logic. Only transport
// failures and 5xx answers to idempotent methods are retried.
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + APIPrefix + path

	maxRetries := c.MaxRetries
	if !retryable(method) {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			if c.RetryDelay < time.Millisecond {
				jitter = 0
			}
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(APIKeyHeader, c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError || maxRetries == 0 {
			return resp, nil
		}

		lastErr = readAPIError(resp)
		resp.Body.Close()
		slog.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
	}

	if maxRetries == 0 {
		return nil, fmt.Errorf("request failed: %w", lastErr)
	}
	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call runs a request and decodes a successful answer into out
func (c *APIClient) call(method, path string, body, out interface{}) error {
	resp, err := c.doRequest(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	apiErr := &APIError{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		apiErr.Message = errResp.Error
	}
	return apiErr
}

// GetOptions returns the current wheel options
func (c *APIClient) GetOptions() ([]domain.Option, error) {
	var out optionsResponse
	if err := c.call(http.MethodGet, "/options", nil, &out); err != nil {
		return nil, err
	}
	return out.Options, nil
}

// AddOption adds an option with a palette color
func (c *APIClient) AddOption(text string) (*domain.Option, error) {
	var opt domain.Option
	if err := c.call(http.MethodPost, "/options", map[string]string{"text": text}, &opt); err != nil {
		return nil, err
	}
	return &opt, nil
}

// RemoveOption deletes an option by id
func (c *APIClient) RemoveOption(id string) error {
	return c.call(http.MethodDelete, "/options/"+url.PathEscape(id), nil, nil)
}

// GetSamples lists the sample set names
func (c *APIClient) GetSamples() ([]string, error) {
	var out struct {
		Samples []string `json:"samples"`
	}
	if err := c.call(http.MethodGet, "/options/samples", nil, &out); err != nil {
		return nil, err
	}
	return out.Samples, nil
}

// LoadSample replaces the wheel with a sample set and returns the new list
func (c *APIClient) LoadSample(name string) ([]domain.Option, error) {
	var out optionsResponse
	if err := c.call(http.MethodPost, "/options/samples/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return out.Options, nil
}

// Spin spins the shared wheel. It blocks until the spin has settled.
func (c *APIClient) Spin() (*SpinResponse, error) {
	var out SpinResponse
	if err := c.call(http.MethodPost, "/spin", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHistory returns up to limit recent results, most recent first
func (c *APIClient) GetHistory(limit int) ([]domain.HistoryEntry, error) {
	path := "/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out historyResponse
	if err := c.call(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

// Ping reports whether the API answers its liveness check
func (c *APIClient) Ping() bool {
	resp, err := c.Client.Get(c.BaseURL + "/healthz")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
