package config

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyhub/pushover/pkg/pushover"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PUSHOVER_TOKEN", "app-token")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, pushover.DefaultURI, cfg.Pushover.URI)
	assert.Equal(t, "app-token", cfg.Pushover.Token.Unmask())
	assert.Equal(t, 10*time.Second, cfg.Pushover.Timeout)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "pushover-relay", cfg.Tracing.ServiceName)
	assert.Empty(t, cfg.Tracing.OTLPEndpoint)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PUSHOVER_TOKEN", "app-token")
	t.Setenv("PUSHOVER_URI", "http://localhost:9000/1/messages.json")
	t.Setenv("PUSHOVER_USER", "uQiRzpo4DXghDmr9QzzfQu27cmVRsG")
	t.Setenv("PUSHOVER_DEVICE", "phone")
	t.Setenv("PUSHOVER_TIMEOUT", "2s")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/1/messages.json", cfg.Pushover.URI)
	assert.Equal(t, "uQiRzpo4DXghDmr9QzzfQu27cmVRsG", cfg.Pushover.User)
	assert.Equal(t, "phone", cfg.Pushover.Device)
	assert.Equal(t, 2*time.Second, cfg.Pushover.Timeout)
	assert.Equal(t, "9090", cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ErrorType
	}{
		{"missing token", map[string]string{"PUSHOVER_TOKEN": ""}, ErrValidation},
		{"bad log level", map[string]string{"PUSHOVER_TOKEN": "t", "LOG_LEVEL": "loud"}, ErrValidation},
		{"bad uri", map[string]string{"PUSHOVER_TOKEN": "t", "PUSHOVER_URI": "not a url"}, ErrValidation},
		{"bad otlp endpoint", map[string]string{"PUSHOVER_TOKEN": "t", "OTEL_EXPORTER_OTLP_ENDPOINT": "collector"}, ErrValidation},
		{"bad duration", map[string]string{"PUSHOVER_TOKEN": "t", "PUSHOVER_TIMEOUT": "soon"}, ErrParsing},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := load()
			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr), "expected *Error, got %v", err)
			assert.Equal(t, tc.want, cfgErr.Type)
		})
	}
}

func TestPushoverConfig_Endpoint(t *testing.T) {
	pc := PushoverConfig{URI: "http://localhost:9000/x", Token: "tok"}
	ep, err := pc.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/x", ep.URI())
	assert.Equal(t, "tok", ep.Token())

	pc.URI = "/relative"
	_, err = pc.Endpoint()
	assert.ErrorIs(t, err, pushover.ErrInvalidURI)
}

func TestSecret_Redacts(t *testing.T) {
	s := Secret("super-secret")
	assert.Equal(t, "[REDACTED]", s.String())
	assert.Equal(t, "[REDACTED] [REDACTED]", fmt.Sprintf("%v %#v", s, s))
	assert.NotContains(t, fmt.Sprintf("%+v", PushoverConfig{Token: s}), "super-secret")
	assert.Equal(t, "super-secret", s.Unmask())
	assert.Empty(t, Secret("").String())
}
