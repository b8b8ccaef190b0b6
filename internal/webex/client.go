package webex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the public Webex REST API endpoint.
	DefaultBaseURL = "https://webexapis.com/v1"

	// maxRateLimitRetries bounds how often a 429 is retried. Rate-limit
	// waiting is the only retry behavior in the client; every other failure
	// surfaces immediately.
	maxRateLimitRetries = 3

	// defaultRateLimitWait is used when a 429 carries no Retry-After header.
	defaultRateLimitWait = 1 * time.Second
)

// Client is a bearer-token-authenticated Webex REST API client.
// It is safe to share: it holds no mutable state after construction.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates a Webex client for the given base URL and access token.
// Pass "" for baseURL to use the public API endpoint.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Credentials selects how the client handle is built: a static access token,
// or a guest issuer pair used to mint and exchange a JWT (see guest.go).
type Credentials struct {
	BaseURL           string
	AccessToken       string
	GuestIssuerID     string
	GuestIssuerSecret string
}

// NewClientFromCredentials builds a client from whichever credential is
// configured, preferring a static access token. Returns ErrNoCredentials if
// neither is usable.
func NewClientFromCredentials(ctx context.Context, creds Credentials) (*Client, error) {
	if creds.AccessToken != "" {
		return NewClient(creds.BaseURL, creds.AccessToken), nil
	}

	if creds.GuestIssuerID != "" && creds.GuestIssuerSecret != "" {
		issuer := GuestIssuer{IssuerID: creds.GuestIssuerID, Secret: creds.GuestIssuerSecret}
		token, err := issuer.Login(ctx, creds.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("guest issuer login failed: %w", err)
		}
		return NewClient(creds.BaseURL, token), nil
	}

	return nil, ErrNoCredentials
}

// do executes one API request, decoding a JSON response into out (unless out
// is nil). Non-2xx responses become *APIError. A 429 is waited out per its
// Retry-After header, up to maxRateLimitRetries attempts.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	trackingID := "webex-mcp_" + uuid.New().String()
	logger := log.With().
		Str("method", method).
		Str("path", path).
		Str("trackingId", trackingID).
		Logger()

	for attempt := 0; ; attempt++ {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("TrackingID", trackingID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := c.httpc.Do(req)
		duration := time.Since(start)
		if err != nil {
			logger.Error().Err(err).Dur("duration", duration).Msg("webex request failed")
			return err
		}

		logger.Debug().
			Int("status", resp.StatusCode).
			Dur("duration", duration).
			Int("attempt", attempt).
			Msg("webex request completed")

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			if attempt >= maxRateLimitRetries {
				return &APIError{StatusCode: resp.StatusCode, Message: "rate limit exceeded", TrackingID: trackingID}
			}
			wait := parseRetryAfter(resp.Header.Get("Retry-After"))
			if wait == 0 {
				wait = defaultRateLimitWait * time.Duration(1<<attempt)
			}
			logger.Warn().Dur("retryAfter", wait).Msg("rate limited by webex, backing off")
			select {
			case <-time.After(wait):
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return decodeResponse(resp, out)
	}
}

// decodeResponse consumes the response body, converting non-2xx statuses into
// *APIError using the error envelope Webex returns.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Message    string `json:"message"`
			TrackingID string `json:"trackingId"`
		}
		if data, err := io.ReadAll(resp.Body); err == nil {
			if json.Unmarshal(data, &envelope) == nil {
				apiErr.Message = envelope.Message
				apiErr.TrackingID = envelope.TrackingID
			}
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode webex response: %w", err)
	}
	return nil
}

// parseRetryAfter parses a Retry-After header (integer seconds or HTTP-date).
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}

	return 0
}
