package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
)

type httpMenuAdapter struct {
	client *utils.HTTPClient

	menuURL string

	logger *logger.Logger
}

// NewHTTPMenuAdapter constructs an HTTP/REST implementation of [MenuAdapter].
// It validates cfg.MenuURL and bounds every request, retries included, by
// cfg.Timeout.
//
// Returns an error if cfg.MenuURL is empty or is not an absolute http(s) URL.
func NewHTTPMenuAdapter(cfg config.Upstream, logger *logger.Logger) (MenuAdapter, error) {
	menuURL, err := normalizeURL(cfg.MenuURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream menu url: %w", err)
	}

	return &httpMenuAdapter{
		client:  utils.NewHTTPClient(cfg.Timeout),
		menuURL: menuURL,
		logger:  logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return u.String(), nil
}

// FetchMenu implements [MenuAdapter]. It issues GET against the configured
// URL and returns the body when it is a JSON object with a "data" member.
func (h *httpMenuAdapter) FetchMenu(ctx context.Context) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.menuURL)
	if err != nil {
		log.Err(err).Str("func", "*httpMenuAdapter.FetchMenu").Msg("menu request failed")
		return nil, fmt.Errorf("menu request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpMenuAdapter.FetchMenu").Int("status", resp.StatusCode()).Msg("menu request rejected")
		return nil, err
	}

	var document map[string]json.RawMessage
	if err = json.Unmarshal(resp.Body(), &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedPayload, err)
	}
	if _, ok := document["data"]; !ok {
		return nil, fmt.Errorf("%w: no data member", ErrUnexpectedPayload)
	}

	return json.RawMessage(resp.Body()), nil
}
