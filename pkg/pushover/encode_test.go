package pushover_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyhub/pushover/pkg/pushover"
)

func newMessage(t *testing.T, dest, body string) *pushover.Message {
	t.Helper()
	msg := pushover.NewMessage()
	require.NoError(t, msg.SetDestination(dest))
	require.NoError(t, msg.SetBody(body))
	return msg
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abcXYZ019", "abcXYZ019"},
		{"-._~", "-._~"},
		{"hello world", "hello%20world"},
		{"a+b&c=d", "a%2Bb%26c%3Dd"},
		{"/?#@:", "%2F%3F%23%40%3A"},
		{"é", "%C3%A9"},
		{"", ""},
	}
	for _, tc := range tests {
		got, err := pushover.PercentEncode(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestEncode_OmitsAbsentFields(t *testing.T) {
	ep := pushover.NewEndpoint("tok 1")
	msg := newMessage(t, "u1", "hello world")

	body, err := pushover.Encode(ep, msg, nil)
	require.NoError(t, err)

	s := string(body)
	assert.Equal(t, "&message=hello%20world&token=tok%201&user=u1&priority=0", s)
	assert.NotContains(t, s, "title=")
	assert.NotContains(t, s, "device=")
}

func TestEncode_FieldOrder(t *testing.T) {
	ep := pushover.NewEndpoint("tok123")
	msg := newMessage(t, "usr456", "Build failed")
	require.NoError(t, msg.SetTitle("CI"))
	require.NoError(t, msg.SetDevice("laptop"))
	require.NoError(t, msg.SetPriority(pushover.PriorityHigh))

	body, err := pushover.Encode(ep, msg, nil)
	require.NoError(t, err)

	s := string(body)
	assert.Equal(t, "&device=laptop&message=Build%20failed&title=CI&token=tok123&user=usr456&priority=1", s)
	assert.True(t, strings.HasSuffix(s, "&priority=1"))

	last := -1
	for _, name := range []string{"device=", "message=", "title=", "token=", "user=", "priority="} {
		i := strings.Index(s, "&"+name)
		require.GreaterOrEqual(t, i, 0, name)
		assert.Greater(t, i, last, "%s out of order", name)
		last = i
	}
}

func TestEncode_NegativePriority(t *testing.T) {
	msg := newMessage(t, "u", "b")
	require.NoError(t, msg.SetPriority(pushover.PriorityNoAlert))

	body, err := pushover.Encode(pushover.NewEndpoint("t"), msg, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(body), "&priority=-2"))
}

func TestEncode_ParsesAsForm(t *testing.T) {
	ep := pushover.NewEndpoint("a&b=c")
	msg := newMessage(t, "u1", "50% off + free ~shipping~")

	body, err := pushover.Encode(ep, msg, nil)
	require.NoError(t, err)

	values, err := url.ParseQuery(string(body))
	require.NoError(t, err)
	assert.Equal(t, "50% off + free ~shipping~", values.Get("message"))
	assert.Equal(t, "a&b=c", values.Get("token"))
	assert.Equal(t, "u1", values.Get("user"))
	assert.Equal(t, "0", values.Get("priority"))
	assert.Len(t, values, 4)
}

func TestEncode_EscaperFailure(t *testing.T) {
	boom := errors.New("out of memory")
	calls := 0
	esc := func(s string) (string, error) {
		calls++
		if calls == 2 {
			return "", boom
		}
		return s, nil
	}

	msg := newMessage(t, "u1", "hi")
	require.NoError(t, msg.SetDevice("d"))

	body, err := pushover.Encode(pushover.NewEndpoint("t"), msg, esc)
	assert.Nil(t, body)
	assert.ErrorIs(t, err, pushover.ErrEncoding)
	assert.ErrorIs(t, err, boom)
}

func TestEncode_NilArguments(t *testing.T) {
	msg := newMessage(t, "usr456", "hi")

	out, err := pushover.Encode(nil, msg, nil)
	assert.ErrorIs(t, err, pushover.ErrMissingURI)
	assert.Nil(t, out)

	out, err = pushover.Encode(pushover.NewEndpoint("tok"), nil, nil)
	assert.ErrorIs(t, err, pushover.ErrMissingDestination)
	assert.Nil(t, out)
}
