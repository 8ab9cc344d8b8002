package ai

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"solar_cli/pkg/logging"
)

const bodyPreviewBytes = 200

// Exchange records the raw outcome of the HTTP round trip made for one
// completion call.
type Exchange struct {
	mu         sync.Mutex
	responded  bool
	statusCode int
	body       []byte
	err        error
}

// Responded reports whether any HTTP response arrived.
func (e *Exchange) Responded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.responded
}

// StatusCode returns the recorded status, or 0 without a response.
func (e *Exchange) StatusCode() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statusCode
}

// Body returns the recorded response body.
func (e *Exchange) Body() []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.body
}

// Err returns the transport error, if the round trip failed.
func (e *Exchange) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

func (e *Exchange) recordResponse(status int, body []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.responded = true
	e.statusCode = status
	e.body = body
	e.err = nil
}

func (e *Exchange) recordError(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.responded = false
	e.statusCode = 0
	e.body = nil
	e.err = err
}

type exchangeKey struct{}

// WithExchange returns a context carrying a fresh Exchange.
func WithExchange(ctx context.Context) (context.Context, *Exchange) {
	ex := &Exchange{}
	return context.WithValue(ctx, exchangeKey{}, ex), ex
}

// ExchangeFrom returns the Exchange bound to ctx, or nil.
func ExchangeFrom(ctx context.Context) *Exchange {
	ex, _ := ctx.Value(exchangeKey{}).(*Exchange)
	return ex
}

// RecordingTransport buffers every response body and stores status and
// body in the Exchange bound to the request context. Requests without an
// Exchange pass through untouched.
type RecordingTransport struct {
	Base http.RoundTripper
}

// NewHTTPClient returns a client with a recording transport and timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &RecordingTransport{},
	}
}

func (t *RecordingTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RoundTrip implements http.RoundTripper.
func (t *RecordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base().RoundTrip(req)
	ex := ExchangeFrom(req.Context())
	if ex == nil {
		return resp, err
	}
	if err != nil {
		ex.recordError(err)
		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		ex.recordError(readErr)
		return nil, readErr
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	ex.recordResponse(resp.StatusCode, body)
	return resp, nil
}

// Complete sends req through p and maps every failure onto
// TransportError, ProtocolError or FormatError.
func Complete(ctx context.Context, p Provider, req ChatRequest) (ChatResponse, error) {
	ctx, ex := WithExchange(ctx)
	start := time.Now()
	resp, err := p.CreateChatCompletion(ctx, req)
	logExchange(ctx, ex, time.Since(start))

	if err := classify(err, ex); err != nil {
		slog.Error("chat_request_failed", "error", err)
		return ChatResponse{}, err
	}
	return resp, nil
}

func classify(err error, ex *Exchange) error {
	if ex.Responded() && ex.StatusCode() != http.StatusOK {
		return &ProtocolError{StatusCode: ex.StatusCode(), Body: string(ex.Body())}
	}
	if err == nil {
		return nil
	}

	var (
		transportErr *TransportError
		protocolErr  *ProtocolError
		formatErr    *FormatError
	)
	if errors.As(err, &transportErr) || errors.As(err, &protocolErr) || errors.As(err, &formatErr) {
		return err
	}
	if errors.Is(err, ErrInvalidRequest) {
		return err
	}

	if ex.Responded() {
		return &FormatError{Raw: string(ex.Body()), Err: err}
	}
	// The client reports its own deadline on the returned error only.
	cause := ex.Err()
	if cause == nil || (isTimeout(err) && !isTimeout(cause)) {
		cause = err
	}
	return &TransportError{Cause: cause}
}

func logExchange(ctx context.Context, ex *Exchange, elapsed time.Duration) {
	if !ex.Responded() {
		slog.Debug("chat_response_none", "error", ex.Err(), "elapsed_ms", elapsed.Milliseconds())
		return
	}

	body := ex.Body()
	preview := string(body)
	if len(preview) > bodyPreviewBytes {
		preview = preview[:bodyPreviewBytes] + "..."
	}
	slog.Debug("chat_response_status",
		"status_code", ex.StatusCode(),
		"body_bytes", len(body),
		"body_preview", preview,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	logger := slog.Default()
	if logger.Enabled(ctx, logging.LevelTrace) {
		logger.Log(ctx, logging.LevelTrace, "chat_response_body", "body", string(body))
	}
}
