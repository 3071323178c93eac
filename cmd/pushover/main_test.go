package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyhub/pushover/pkg/pushover"
)

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	o, err := parseFlags([]string{"-user", "u1", "-message", "hi", "-priority", "high"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "u1", o.user)
	assert.Equal(t, "hi", o.message)
	assert.Equal(t, "high", o.priority)

	_, err = parseFlags([]string{"-user", "u1"}, &stderr)
	assert.Error(t, err)
}

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage(options{user: "u1", message: "hi", device: "phone", priority: "-1"})
	require.NoError(t, err)
	assert.Equal(t, "phone", msg.Device())
	assert.Equal(t, pushover.PriorityQuiet, msg.Priority())

	_, err = buildMessage(options{message: "hi", priority: "default"})
	assert.ErrorIs(t, err, pushover.ErrMissingDestination)

	_, err = buildMessage(options{user: "u1", message: "hi", priority: "7"})
	assert.ErrorIs(t, err, pushover.ErrInvalidPriority)
}

func TestRun(t *testing.T) {
	forms := make(chan url.Values, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		forms <- r.PostForm
	}))
	defer srv.Close()

	t.Setenv("PUSHOVER_TOKEN", "app-token")
	t.Setenv("PUSHOVER_USER", "envuser")
	t.Setenv("LOG_LEVEL", "error")

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-uri", srv.URL, "-message", "deploy done", "-title", "CD"}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	form := <-forms
	assert.Equal(t, "envuser", form.Get("user"))
	assert.Equal(t, "deploy done", form.Get("message"))
	assert.Equal(t, "CD", form.Get("title"))
	assert.Equal(t, "app-token", form.Get("token"))
	assert.Equal(t, "0", form.Get("priority"))
}

func TestRun_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	t.Setenv("PUSHOVER_TOKEN", "app-token")
	t.Setenv("LOG_LEVEL", "error")

	var stderr bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"-user", "u1"}, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"-bogus"}, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"-uri", srv.URL, "-user", "u1", "-message", "x"}, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"-uri", "ftp://nope", "-user", "u1", "-message", "x"}, &stderr))
}

func TestRun_Help(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, run(context.Background(), []string{"-h"}, &stderr))
	assert.Contains(t, stderr.String(), "-message")
}
