// Package api is the remote gateway adapter: every outbound call to the
// MeshPay backend goes through the single request helper here, which
// normalizes HTTP outcomes into the uniform success/message/data envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meshpay/meshpay-client/internal/domain"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "api").Logger()

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// envelope is the normalized shape of every gateway outcome regardless of
// the underlying HTTP result.
type envelope struct {
	Success bool
	Message string
	Data    json.RawMessage

	status  int
	network bool
}

// err maps a failed envelope onto the error taxonomy: domain.ErrNetwork for
// transport failures, *domain.APIError carrying the backend message
// otherwise.
func (e envelope) err() error {
	if e.Success {
		return nil
	}
	if e.network {
		return domain.ErrNetwork
	}
	return &domain.APIError{StatusCode: e.status, Message: e.Message}
}

// request issues one best-effort JSON call. No retries, no per-call timeout
// override, no caching; cancellation comes only from ctx.
func (c *Client) request(ctx context.Context, method, path string, body any) envelope {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			logger.Error().Err(err).Msg("Error marshalling JSON")
			return envelope{Message: "An error occurred"}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return envelope{Message: "An error occurred"}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error connecting to MeshPay API")
		return envelope{Message: domain.ErrNetwork.Error(), network: true}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error reading response body")
		return envelope{Message: domain.ErrNetwork.Error(), network: true}
	}

	msg := backendMessage(raw)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if msg == "" {
			msg = "An error occurred"
		}
		logger.Warn().Int("status", resp.StatusCode).Str("path", path).Str("message", msg).Msg("backend rejected request")
		return envelope{Message: msg, Data: raw, status: resp.StatusCode}
	}

	if msg == "" {
		msg = "Success"
	}
	return envelope{Success: true, Message: msg, Data: raw, status: resp.StatusCode}
}

// backendMessage pulls the optional top-level message out of a response
// body without failing on any other shape.
func backendMessage(raw []byte) string {
	var probe struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.Message
}
