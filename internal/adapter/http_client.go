package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mkarev/go-dataset-hub/internal/config"
	"github.com/mkarev/go-dataset-hub/internal/logger"
)

type httpEngineAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPEngineAdapter constructs an [EngineAdapter] speaking the index
// backend's HTTP API (Elasticsearch-style `_open`/`_close` verbs).
func NewHTTPEngineAdapter(cfg config.Engine, log *logger.Logger) EngineAdapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpEngineAdapter{client: cli, logger: log}
}

func (h *httpEngineAdapter) OpenIndex(ctx context.Context, index string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/" + index + "/_open")
	if err != nil {
		return fmt.Errorf("%w: open index request: %w", ErrEngineUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpEngineAdapter) CloseIndex(ctx context.Context, index string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/" + index + "/_close")
	if err != nil {
		return fmt.Errorf("%w: close index request: %w", ErrEngineUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpEngineAdapter) DeleteIndex(ctx context.Context, index string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/" + index)
	if err != nil {
		return fmt.Errorf("%w: delete index request: %w", ErrEngineUnavailable, err)
	}

	// a missing index is already gone; the dataset record is the source
	// of truth for existence
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusNotFound {
		return ErrIndexNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrEngineUnavailable, resp.StatusCode(), body)
}

// noopEngineAdapter satisfies [EngineAdapter] for deployments that run
// without an index backend (e.g. local development with SQLite).
type noopEngineAdapter struct {
	logger *logger.Logger
}

// NewNoopEngineAdapter constructs an [EngineAdapter] that only logs the
// requested transitions.
func NewNoopEngineAdapter(log *logger.Logger) EngineAdapter {
	return &noopEngineAdapter{logger: log}
}

func (n *noopEngineAdapter) OpenIndex(ctx context.Context, index string) error {
	logger.FromContext(ctx).Debug().Str("index", index).Msg("noop engine: open index")
	return nil
}

func (n *noopEngineAdapter) CloseIndex(ctx context.Context, index string) error {
	logger.FromContext(ctx).Debug().Str("index", index).Msg("noop engine: close index")
	return nil
}

func (n *noopEngineAdapter) DeleteIndex(ctx context.Context, index string) error {
	logger.FromContext(ctx).Debug().Str("index", index).Msg("noop engine: delete index")
	return nil
}
