// Command pushover submits a single message to the Pushover API.
//
//	PUSHOVER_TOKEN=... pushover -user uQiRzpo4DXghDmr9QzzfQu27cmVRsG -message "Build failed" -priority high
//
// The application token, default user, device and API URI are read from the
// environment (see internal/config); flags override the user, device and URI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/notifyhub/pushover/internal/config"
	"github.com/notifyhub/pushover/internal/logging"
	"github.com/notifyhub/pushover/pkg/pushover"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

type options struct {
	user     string
	message  string
	title    string
	device   string
	priority string
	uri      string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("pushover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.user, "user", "", "recipient user or group key (default $PUSHOVER_USER)")
	fs.StringVar(&o.message, "message", "", "message text (required)")
	fs.StringVar(&o.title, "title", "", "message title")
	fs.StringVar(&o.device, "device", "", "deliver to this device only (default $PUSHOVER_DEVICE)")
	fs.StringVar(&o.priority, "priority", "default", "no-alert, quiet, default, high, require-confirmation or -2..2")
	fs.StringVar(&o.uri, "uri", "", "API URI (default $PUSHOVER_URI)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.message == "" {
		return o, errors.New("-message is required")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	if opts.uri != "" {
		cfg.Pushover.URI = opts.uri
	}
	if opts.user == "" {
		opts.user = cfg.Pushover.User
	}
	if opts.device == "" {
		opts.device = cfg.Pushover.Device
	}

	ep, err := cfg.Pushover.Endpoint()
	if err != nil {
		logger.Error("invalid endpoint", zap.Error(err))
		return 1
	}
	defer pushover.DestroyEndpoint(&ep)

	msg, err := buildMessage(opts)
	if err != nil {
		logger.Error("invalid message", zap.Error(err))
		return 1
	}
	defer pushover.DestroyMessage(&msg)

	pushover.Init()
	defer pushover.Cleanup()

	client := pushover.NewClient(pushover.WithTimeout(cfg.Pushover.Timeout))
	if err := client.Submit(ctx, ep, msg); err != nil {
		logger.Error("submit failed", zap.String("stage", string(pushover.StageOf(err))), zap.Error(err))
		return 1
	}
	logger.Info("message sent", zap.String("user", msg.Destination()), zap.Stringer("priority", msg.Priority()))
	return 0
}

func buildMessage(o options) (*pushover.Message, error) {
	prio, err := pushover.ParsePriority(o.priority)
	if err != nil {
		return nil, err
	}

	msg := pushover.NewMessage()
	if o.user != "" {
		if err := msg.SetDestination(o.user); err != nil {
			return nil, err
		}
	}
	if err := msg.SetBody(o.message); err != nil {
		return nil, err
	}
	if o.title != "" {
		if err := msg.SetTitle(o.title); err != nil {
			return nil, err
		}
	}
	if o.device != "" {
		if err := msg.SetDevice(o.device); err != nil {
			return nil, err
		}
	}
	if err := msg.SetPriority(prio); err != nil {
		return nil, err
	}
	return msg, msg.Validate()
}
