package chatkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ui8kit/chatkit-gateway/internal/config"
)

const (
	sessionsPath = "/v1/chatkit/sessions"
	betaHeader   = "chatkit_beta=v1"
)

// Client calls the OpenAI ChatKit sessions API.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client from configuration. The zero-value http.Client
// keeps the platform's default timeout behaviour.
func NewClient(cfg config.ChatKitConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.APIBase, "/"),
		httpc:   &http.Client{},
	}
}

// SessionParams is one session-creation request to the upstream API.
type SessionParams struct {
	WorkflowID        string
	UserID            string
	FileUploadEnabled bool
}

// Session is the subset of the upstream response relayed to the browser.
// Values pass through unmodified; a missing field marshals as null.
type Session struct {
	ClientSecret json.RawMessage `json:"client_secret"`
	ExpiresAfter json.RawMessage `json:"expires_after"`
}

// UpstreamError carries a non-2xx upstream response: its status code, a
// best-effort human-readable message, and the parsed body for relaying.
type UpstreamError struct {
	StatusCode int
	Message    string
	Details    json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("chatkit sessions api returned %d: %s", e.StatusCode, e.Message)
}

// CreateSession issues a single session-creation call. There are no retries:
// transport errors surface as-is and non-2xx responses come back as
// *UpstreamError.
func (c *Client) CreateSession(ctx context.Context, params SessionParams) (Session, error) {
	payload := map[string]any{
		"workflow": map[string]string{"id": params.WorkflowID},
		"user":     params.UserID,
		"chatkit_configuration": map[string]any{
			"file_upload": map[string]bool{"enabled": params.FileUploadEnabled},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Session{}, fmt.Errorf("encode session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sessionsPath, bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("OpenAI-Beta", betaHeader)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("call sessions api: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, fmt.Errorf("read sessions response: %w", err)
	}

	var parsed json.RawMessage
	if len(text) > 0 && gjson.ValidBytes(text) {
		parsed = json.RawMessage(text)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := extractMessage(parsed)
		if message == "" {
			message = fmt.Sprintf("Failed to create session: %s", http.StatusText(resp.StatusCode))
		}
		return Session{}, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    message,
			Details:    parsed,
		}
	}

	return Session{
		ClientSecret: rawField(parsed, "client_secret"),
		ExpiresAfter: rawField(parsed, "expires_after"),
	}, nil
}

// extractMessage digs a human-readable message out of an upstream error body.
// The order matches the shapes the API actually puts on the wire: a bare
// error string, error.message, a details string, a nested details error, then
// a top-level message. First string found wins.
func extractMessage(body json.RawMessage) string {
	if len(body) == 0 {
		return ""
	}
	paths := []string{
		"error",
		"error.message",
		"details",
		"details.error",
		"details.error.message",
		"message",
	}
	for _, path := range paths {
		if v := gjson.GetBytes(body, path); v.Type == gjson.String {
			return v.String()
		}
	}
	return ""
}

// rawField extracts one field verbatim, or nil when the body is unparsable or
// the field is missing or null.
func rawField(body json.RawMessage, path string) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	v := gjson.GetBytes(body, path)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	return json.RawMessage(v.Raw)
}
