package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client whose requests, retries included, are
// bounded by timeout. A zero timeout leaves requests unbounded.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(1).
		SetRetryWaitTime(100*time.Millisecond).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
