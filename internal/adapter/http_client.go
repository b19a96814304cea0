// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pgtools/pg-config-view/models"
)

// HTTPClientConfig configures the REST implementation of ServerAdapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL is normalised (a missing scheme defaults
// to http) and the underlying client gets the configured request
// timeout.
func NewHTTPServerAdapter(cfg HTTPClientConfig) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}, nil
}

func (h *httpServerAdapter) GetConfig(ctx context.Context) ([]models.ConfigEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/config/")
	if err != nil {
		return nil, fmt.Errorf("config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.ConfigEntry
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}

	return entries, nil
}

func (h *httpServerAdapter) GetValue(ctx context.Context, name string) (models.ConfigEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/api/config/{name}")
	if err != nil {
		return models.ConfigEntry{}, fmt.Errorf("config value request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigEntry{}, err
	}

	var entry models.ConfigEntry
	if err := json.Unmarshal(resp.Body(), &entry); err != nil {
		return models.ConfigEntry{}, fmt.Errorf("config value decode: %w", err)
	}

	return entry, nil
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func mapHTTPError(resp *resty.Response) error {
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return ErrUnknownKey
	case resp.IsError():
		return fmt.Errorf("%w: status %d", ErrServerError, resp.StatusCode())
	default:
		return nil
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	return strings.TrimRight(raw, "/"), nil
}
