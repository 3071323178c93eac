package pushover

import "net/url"

// DefaultURI is the message endpoint of the Pushover API.
const DefaultURI = "https://api.pushover.net/1/messages.json"

// Endpoint is the destination of a submission: the API URI and the
// application token. It can be reused across any number of messages but
// must not be mutated concurrently.
type Endpoint struct {
	uri   string
	token string
}

// NewEndpoint returns an Endpoint pointed at DefaultURI. An empty token
// leaves the token unset; it must then be provided with SetToken before
// submitting.
func NewEndpoint(token string) *Endpoint {
	return &Endpoint{uri: DefaultURI, token: token}
}

// SetURI replaces the endpoint URI. The stored value is left untouched
// when uri is rejected.
func (e *Endpoint) SetURI(uri string) error {
	if uri == "" {
		return ErrEmptyURI
	}
	u, err := url.Parse(uri)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURI
	}
	e.uri = uri
	return nil
}

// SetToken replaces the application token.
func (e *Endpoint) SetToken(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	e.token = token
	return nil
}

func (e *Endpoint) URI() string    { return e.uri }
func (e *Endpoint) Token() string  { return e.token }
func (e *Endpoint) HasToken() bool { return e.token != "" }

// Validate checks that the endpoint can be used for a submission.
func (e *Endpoint) Validate() error {
	if e.uri == "" {
		return ErrMissingURI
	}
	if e.token == "" {
		return ErrMissingToken
	}
	return nil
}

// DestroyEndpoint clears the endpoint and invalidates the handle.
// It is a no-op on a nil or already destroyed handle.
func DestroyEndpoint(ep **Endpoint) {
	if ep == nil || *ep == nil {
		return
	}
	(*ep).uri = ""
	(*ep).token = ""
	*ep = nil
}
