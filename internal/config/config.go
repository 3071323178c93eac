// Package config loads runtime configuration for the relay server and CLI.
//
// Values are resolved from the process environment, falling back to a .env
// file in the working directory. The loaded Config is validated once and not
// modified afterwards.
package config

import (
	"time"

	"github.com/notifyhub/pushover/pkg/pushover"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; only PUSHOVER_TOKEN is required.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Pushover PushoverConfig
	Server   ServerConfig
	Tracing  TracingConfig
}

// PushoverConfig describes the upstream API and the message defaults.
type PushoverConfig struct {
	URI     string        `envconfig:"PUSHOVER_URI" validate:"required,url"`
	Token   Secret        `envconfig:"PUSHOVER_TOKEN" validate:"required"`
	User    string        `envconfig:"PUSHOVER_USER"`
	Device  string        `envconfig:"PUSHOVER_DEVICE"`
	Timeout time.Duration `envconfig:"PUSHOVER_TIMEOUT" default:"10s" validate:"gte=0"`
}

// ServerConfig tunes the relay HTTP server.
type ServerConfig struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080" validate:"required,numeric"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// TracingConfig controls OpenTelemetry tracing. Spans are only exported
// when an OTLP endpoint is set; trace context is propagated regardless.
type TracingConfig struct {
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"pushover-relay" validate:"required"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"omitempty,url"`
}

// Endpoint builds a pushover.Endpoint from the configured URI and token.
func (c *PushoverConfig) Endpoint() (*pushover.Endpoint, error) {
	ep := pushover.NewEndpoint(c.Token.Unmask())
	if err := ep.SetURI(c.URI); err != nil {
		return nil, err
	}
	return ep, nil
}

// Secret is a string that never prints its value.
type Secret string

const redacted = "[REDACTED]"

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// GoString keeps %#v from leaking the value.
func (s Secret) GoString() string { return s.String() }

func (s Secret) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Unmask returns the raw value.
func (s Secret) Unmask() string { return string(s) }
