package pushover

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "pushover-go/1.0"
)

// Doer is the HTTP capability used to deliver a request. *http.Client
// satisfies it; tests substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Hooks are called once per Submit with its outcome. Either may be nil.
type Hooks struct {
	OnSent   func(p Priority, latency time.Duration)
	OnFailed func(stage Stage)
}

// Client submits messages. It holds no per-submission state, so one Client
// may serve concurrent Submit calls on distinct endpoints and messages.
type Client struct {
	doer      Doer
	timeout   time.Duration
	escaper   Escaper
	userAgent string
	onSent    func(Priority, time.Duration)
	onFailed  func(Stage)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the shared transport with d.
func WithHTTPClient(d Doer) ClientOption {
	return func(c *Client) { c.doer = d }
}

// WithTimeout bounds each submission. Zero disables the bound and leaves
// cancellation to the caller's context.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithEscaper replaces PercentEncode.
func WithEscaper(esc Escaper) ClientOption {
	return func(c *Client) { c.escaper = esc }
}

// WithHooks installs outcome callbacks, typically metrics.
func WithHooks(h Hooks) ClientOption {
	return func(c *Client) {
		c.onSent = h.OnSent
		c.onFailed = h.OnFailed
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:   DefaultTimeout,
		escaper:   PercentEncode,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = &http.Client{Transport: Init()}
	}
	if c.escaper == nil {
		c.escaper = PercentEncode
	}
	if c.onSent == nil {
		c.onSent = func(Priority, time.Duration) {}
	}
	if c.onFailed == nil {
		c.onFailed = func(Stage) {}
	}
	return c
}

// Submit validates ep and msg, encodes the message and POSTs it to the
// endpoint URI. It blocks until the endpoint answers or ctx is done and
// returns nil only when the endpoint replied with a 2xx status.
//
// Failures are reported as *SubmitError. Nothing is sent unless both
// values pass validation and the body encodes cleanly.
func (c *Client) Submit(ctx context.Context, ep *Endpoint, msg *Message) error {
	start := time.Now()
	if err := c.submit(ctx, ep, msg); err != nil {
		c.onFailed(StageOf(err))
		return err
	}
	c.onSent(msg.priority, time.Since(start))
	return nil
}

func (c *Client) submit(ctx context.Context, ep *Endpoint, msg *Message) error {
	if err := validatePair(ep, msg); err != nil {
		return &SubmitError{Stage: StageValidating, Err: err}
	}

	body, err := Encode(ep, msg, c.escaper)
	if err != nil {
		return &SubmitError{Stage: StageEncoding, Err: err}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.uri, bytes.NewReader(body))
	if err != nil {
		return &SubmitError{Stage: StageTransmitting, Err: fmt.Errorf("%w: create request: %w", ErrTransport, err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return &SubmitError{Stage: StageTransmitting, Err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}
	defer resp.Body.Close()

	// The response is not interpreted; read it to the end so the
	// connection can be reused.
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return &SubmitError{Stage: StageTransmitting, Err: fmt.Errorf("%w: read response: %w", ErrTransport, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &SubmitError{Stage: StageTransmitting, StatusCode: resp.StatusCode, Err: ErrTransport}
	}
	return nil
}

func validatePair(ep *Endpoint, msg *Message) error {
	if ep == nil {
		return ErrMissingURI
	}
	if msg == nil {
		return ErrMissingDestination
	}
	if err := ep.Validate(); err != nil {
		return err
	}
	return msg.Validate()
}

// Submit sends msg with a default Client and reports whether the endpoint
// accepted it.
func Submit(ctx context.Context, ep *Endpoint, msg *Message) bool {
	return NewClient().Submit(ctx, ep, msg) == nil
}
