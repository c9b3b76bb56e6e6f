package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"slambook/internal/logging"
	"slambook/internal/models"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// HTTPClient implements Client over the backend's JSON REST API.
type HTTPClient struct {
	baseURL     string
	http        *http.Client
	log         logging.Logger
	readRetries uint64
	backoff     time.Duration
}

// Option tweaks an HTTPClient.
type Option func(*HTTPClient)

// WithReadRetries sets how many extra attempts transient read failures get.
func WithReadRetries(n uint64) Option {
	return func(c *HTTPClient) { c.readRetries = n }
}

// WithBackoff sets the pause between read retries.
func WithBackoff(d time.Duration) Option {
	return func(c *HTTPClient) { c.backoff = d }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// NewHTTPClient builds a client for baseURL. Every request consults tokens;
// any 401 response triggers onAuthRejected before the error is returned, so
// the session owner can evict itself.
func NewHTTPClient(baseURL string, tokens TokenSource, onAuthRejected func(), log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &authTransport{
				next:           http.DefaultTransport,
				tokens:         tokens,
				onAuthRejected: onAuthRejected,
			},
		},
		log:         log,
		readRetries: 2,
		backoff:     500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// authTransport attaches the bearer token per request and fires the auth
// rejection hook on 401, so the session owner can evict stale credentials.
type authTransport struct {
	next           http.RoundTripper
	tokens         TokenSource
	onAuthRejected func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokens.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := t.next.RoundTrip(req)
	if err == nil && resp.StatusCode == http.StatusUnauthorized && t.onAuthRejected != nil {
		t.onAuthRejected()
	}
	return resp, err
}

// do issues one request and decodes a 2xx JSON body into out (when non-nil).
// Non-2xx responses are normalized via mapStatus; network faults become
// ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return mapStatus(resp.StatusCode, er.Detail)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// get issues a read with bounded automatic retries on transient failures.
// Writes never go through here; a failed write is surfaced to the user.
func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	backoff := retry.WithMaxRetries(c.readRetries, retry.NewConstant(c.backoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, nil, out)
		if errors.Is(err, ErrUnavailable) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", signupRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *HTTPClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var wire []wireEntry
	if err := c.get(ctx, "/entries", &wire); err != nil {
		return nil, err
	}
	entries := make([]models.Entry, 0, len(wire))
	for _, w := range wire {
		entries = append(entries, w.toModel())
	}
	return entries, nil
}

func (c *HTTPClient) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	var wire wireEntry
	if err := c.get(ctx, "/entries/"+id, &wire); err != nil {
		return models.Entry{}, err
	}
	return wire.toModel(), nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, draft models.EntryDraft) (models.Entry, error) {
	var wire wireEntry
	if err := c.do(ctx, http.MethodPost, "/entries", payloadFromDraft(draft), &wire); err != nil {
		return models.Entry{}, err
	}
	return wire.toModel(), nil
}

func (c *HTTPClient) UpdateEntry(ctx context.Context, id string, draft models.EntryDraft) (models.Entry, error) {
	var wire wireEntry
	if err := c.do(ctx, http.MethodPut, "/entries/"+id, payloadFromDraft(draft), &wire); err != nil {
		return models.Entry{}, err
	}
	return wire.toModel(), nil
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/entries/"+id, nil, nil)
}

func (c *HTTPClient) ToggleFavorite(ctx context.Context, id string) (models.Entry, error) {
	var wire wireEntry
	if err := c.do(ctx, http.MethodPatch, "/entries/"+id+"/favorite", nil, &wire); err != nil {
		return models.Entry{}, err
	}
	return wire.toModel(), nil
}

func (c *HTTPClient) Statistics(ctx context.Context) (models.EntryStatistics, error) {
	var wire wireStatistics
	if err := c.get(ctx, "/entries/stats/statistics", &wire); err != nil {
		return models.EntryStatistics{}, err
	}
	byTag := wire.ByTag
	if byTag == nil {
		byTag = map[string]int{}
	}
	return models.EntryStatistics{Total: wire.Total, Favorites: wire.Favorites, ByTag: byTag}, nil
}

func (c *HTTPClient) Export(ctx context.Context) (string, error) {
	entries, err := c.ListEntries(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}
	return string(data), nil
}

func (c *HTTPClient) Import(ctx context.Context, entries []models.Entry) (models.ImportResult, error) {
	result := models.ImportResult{Errors: []string{}}
	for _, e := range entries {
		draft := e.Draft()
		draft.ID = "" // every imported record becomes a fresh server entry
		if _, err := c.CreateEntry(ctx, draft); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %s: %s", e.Name, err.Error()))
			continue
		}
		result.Success++
	}
	return result, nil
}
