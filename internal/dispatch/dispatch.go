// Package dispatch is the single HTTP access point to the backend. Every
// call flows through one interceptor pipeline: the outbound side attaches
// the stored bearer credential and a request ID, the inbound side maps
// failure statuses to typed errors and owns the global transient
// notifications for them.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/futdash/futdash/internal/credential"
	"github.com/futdash/futdash/internal/notify"
)

// RequestInterceptor runs against every outbound request before it is sent.
type RequestInterceptor func(*http.Request) error

// ResponseInterceptor runs against every received response before status
// handling. It must not consume the body.
type ResponseInterceptor func(*http.Response) error

// Dispatcher issues JSON requests against a single base URL.
type Dispatcher struct {
	baseURL  string
	client   *http.Client
	creds    *credential.Store
	notifier notify.Notifier
	logger   *slog.Logger

	onInvalidate func()

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(d *Dispatcher) { d.client = c }
}

// WithTimeout sets the per-request timeout on the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) { d.client.Timeout = timeout }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// New creates a Dispatcher for baseURL reading credentials from creds.
// notifier receives the global transient notices for uniform failures.
func New(baseURL string, creds *credential.Store, notifier notify.Notifier, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: 30 * time.Second},
		creds:    creds,
		notifier: notifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.requestInterceptors = []RequestInterceptor{
		d.attachBearer,
		attachRequestID,
	}

	return d
}

// SetInvalidateHook registers the callback fired after a 401 has cleared the
// credential slot. The session store registers itself here so invalidation
// is an explicit collaboration rather than two modules polling shared state.
func (d *Dispatcher) SetInvalidateHook(fn func()) {
	d.onInvalidate = fn
}

// Use appends a request interceptor after the built-in ones.
func (d *Dispatcher) Use(ri RequestInterceptor) {
	d.requestInterceptors = append(d.requestInterceptors, ri)
}

// UseResponse appends a response interceptor.
func (d *Dispatcher) UseResponse(ri ResponseInterceptor) {
	d.responseInterceptors = append(d.responseInterceptors, ri)
}

// attachBearer reads the credential slot and, when a credential is present,
// sets the Authorization header. The slot is read at send time so each call
// carries its own snapshot, including calls issued before session
// initialization has finished.
func (d *Dispatcher) attachBearer(req *http.Request) error {
	cred, err := d.creds.Load()
	if err != nil {
		return fmt.Errorf("loading credential: %w", err)
	}
	if cred != nil {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}
	return nil
}

func attachRequestID(req *http.Request) error {
	req.Header.Set("X-Request-ID", uuid.New().String())
	return nil
}

// Get issues a GET against path and decodes the JSON response into out.
func (d *Dispatcher) Get(ctx context.Context, path string, out any) error {
	return d.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with body marshalled as JSON, decoding into out.
func (d *Dispatcher) Post(ctx context.Context, path string, body, out any) error {
	return d.Do(ctx, http.MethodPost, path, body, out)
}

// Do issues a request through the full interceptor pipeline. out may be nil
// when the caller does not need the response body.
func (d *Dispatcher) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, intercept := range d.requestInterceptors {
		if err := intercept(req); err != nil {
			return err
		}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		d.notifier.Error("connection error, check your network")
		return &APIError{Kind: KindTransport, Detail: "could not reach the server", err: err}
	}
	defer resp.Body.Close()

	for _, intercept := range d.responseInterceptors {
		if err := intercept(resp); err != nil {
			return err
		}
	}

	if apiErr := d.handleStatus(resp); apiErr != nil {
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// handleStatus maps non-2xx statuses to APIErrors and performs the
// cross-cutting side effects tied to them.
func (d *Dispatcher) handleStatus(resp *http.Response) *APIError {
	switch {
	case resp.StatusCode < 400:
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		// The only involuntary session-teardown path. Clearing an empty
		// slot is a no-op, so concurrent 401s cannot fail here.
		if err := d.creds.Clear(); err != nil {
			d.logger.Error("failed to clear rejected credential", "error", err)
		}
		if d.onInvalidate != nil {
			d.onInvalidate()
		}
		d.notifier.Error("session expired, please log in again")
		return &APIError{
			Kind:   KindUnauthorized,
			Status: resp.StatusCode,
			Detail: decodeDetail(resp.Body),
			err:    ErrSessionInvalidated,
		}

	case resp.StatusCode == http.StatusNotFound:
		d.notifier.Error("not found")
		return &APIError{Kind: KindNotFound, Status: resp.StatusCode, Detail: decodeDetail(resp.Body)}

	case resp.StatusCode >= 500:
		d.notifier.Error("server error, try again later")
		return &APIError{Kind: KindServerFault, Status: resp.StatusCode, Detail: decodeDetail(resp.Body)}

	default:
		// Business rejections carry the backend message verbatim and are
		// surfaced inline by the caller, not as a global notice.
		return &APIError{Kind: KindRejected, Status: resp.StatusCode, Detail: decodeDetail(resp.Body)}
	}
}

// decodeDetail pulls the backend's {"detail": "..."} message from an error
// body. Returns empty when the body has some other shape.
func decodeDetail(body io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}
