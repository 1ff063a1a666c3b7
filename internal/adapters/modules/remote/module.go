// Package remote provides an HTTP-backed implementation of the domain module
// contract. Each remote module exposes a single POST /validate endpoint; this
// adapter translates between the wire shape and [coherence.Report].
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/goalkeeper/internal/domain/coherence"
	"github.com/jsamuelsen11/goalkeeper/internal/platform/httpclient"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// Compile-time interface check.
var _ ports.DomainModule = (*Module)(nil)

// validateRequestDTO is the wire shape sent to POST {base_url}/validate.
type validateRequestDTO struct {
	Domain  string         `json:"domain"`
	Payload map[string]any `json:"payload"`
}

// validateResponseDTO is the wire shape a module returns from /validate.
type validateResponseDTO struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// Module is the outbound adapter for a remote domain module. It implements
// [ports.DomainModule] by POSTing validation requests to the module's
// /validate endpoint.
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, rate limiting, OpenTelemetry tracing, and health
// checking for every outbound call. A non-2xx response or transport failure
// is returned as an error: the caller treats it as the module raising, not
// as a validation verdict.
type Module struct {
	domain string
	client *httpclient.Client
	logger *slog.Logger
}

// New creates a Module for the given domain that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point at the remote
// module's root (e.g. "http://finance-module:8081").
func New(domain string, client *httpclient.Client, logger *slog.Logger) *Module {
	return &Module{
		domain: domain,
		client: client,
		logger: logger,
	}
}

// Validate POSTs {domain, payload} to the module's /validate endpoint and
// decodes the {valid, issues} verdict. The returned error is non-nil only
// when the module could not be consulted at all.
func (m *Module) Validate(ctx context.Context, payload map[string]any) (coherence.Report, error) {
	body, err := json.Marshal(validateRequestDTO{
		Domain:  m.domain,
		Payload: payload,
	})
	if err != nil {
		return coherence.Report{}, fmt.Errorf("marshaling validate request: %w", err)
	}

	url := m.client.BaseURL() + "/validate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return coherence.Report{}, fmt.Errorf("creating validate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		if resp != nil {
			m.closeBody(ctx, resp)
		}
		m.logger.ErrorContext(ctx, "module validate request failed",
			slog.String("module", m.client.Name()),
			slog.String("domain", m.domain),
			slog.String("error", err.Error()),
		)
		return coherence.Report{}, fmt.Errorf("module %s: %w", m.client.Name(), err)
	}
	defer m.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		m.logger.ErrorContext(ctx, "module validate returned unexpected status",
			slog.String("module", m.client.Name()),
			slog.String("domain", m.domain),
			slog.Int("status", resp.StatusCode),
		)
		return coherence.Report{}, fmt.Errorf("module %s: unexpected status %d", m.client.Name(), resp.StatusCode)
	}

	var dto validateResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return coherence.Report{}, fmt.Errorf("module %s: decoding validate response: %w", m.client.Name(), err)
	}

	return coherence.Report{
		Valid:  dto.Valid,
		Issues: dto.Issues,
	}, nil
}

// closeBody closes an HTTP response body and logs on failure.
func (m *Module) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		m.logger.WarnContext(ctx, "failed to close response body",
			slog.String("module", m.client.Name()),
			slog.String("error", err.Error()),
		)
	}
}
