package pushover

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Escaper percent-encodes a single form value.
type Escaper func(string) (string, error)

// PercentEncode encodes s for use as a form value. ALPHA, DIGIT and "-._~"
// pass through; every other byte becomes %XX, so a space is "%20" rather
// than "+".
func PercentEncode(s string) (string, error) {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20"), nil
}

// Encode serializes msg for submission through ep.
//
// Present fields are written in the order device, message, title, token,
// user, each as "&name=value"; absent fields are left out. priority is
// always written last. The body keeps its leading "&": the API parses
// fields by name and ignores the empty leading pair.
//
// A nil esc selects PercentEncode. If esc fails no body is returned.
// A nil ep or msg yields ErrMissingURI or ErrMissingDestination.
func Encode(ep *Endpoint, msg *Message, esc Escaper) ([]byte, error) {
	if ep == nil {
		return nil, ErrMissingURI
	}
	if msg == nil {
		return nil, ErrMissingDestination
	}
	if esc == nil {
		esc = PercentEncode
	}

	fields := [...]struct {
		name  string
		value string
	}{
		{"device", msg.device},
		{"message", msg.body},
		{"title", msg.title},
		{"token", ep.token},
		{"user", msg.destination},
	}

	var buf bytes.Buffer
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		enc, err := esc(f.value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrEncoding, f.name, err)
		}
		buf.WriteByte('&')
		buf.WriteString(f.name)
		buf.WriteByte('=')
		buf.WriteString(enc)
	}

	buf.WriteString("&priority=")
	buf.WriteString(strconv.Itoa(int(msg.priority)))

	return buf.Bytes(), nil
}
