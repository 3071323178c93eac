package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/notifyhub/pushover/internal/domain"
	"github.com/notifyhub/pushover/internal/logging"
	"github.com/notifyhub/pushover/pkg/pushover"
)

// Submitter delivers a message through an endpoint. *pushover.Client
// implements it.
type Submitter interface {
	Submit(ctx context.Context, ep *pushover.Endpoint, msg *pushover.Message) error
}

// Defaults are applied to requests that leave the field empty.
type Defaults struct {
	User   string
	Device string
}

// MessageService turns relay requests into pushover messages and submits
// them through a single configured endpoint. The endpoint is only read, so
// the service is safe for concurrent use.
type MessageService struct {
	client   Submitter
	endpoint *pushover.Endpoint
	defaults Defaults
	logger   *zap.Logger
}

func NewMessageService(
	client Submitter,
	endpoint *pushover.Endpoint,
	defaults Defaults,
	logger *zap.Logger,
) *MessageService {
	return &MessageService{client: client, endpoint: endpoint, defaults: defaults, logger: logger}
}

// EndpointURI is the upstream URI messages are submitted to.
func (s *MessageService) EndpointURI() string {
	return s.endpoint.URI()
}

// Send validates req, builds the message and submits it synchronously.
func (s *MessageService) Send(ctx context.Context, req domain.SendMessageRequest) (*domain.SendMessageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	msg, err := s.buildMessage(req)
	if err != nil {
		return nil, err
	}
	defer pushover.DestroyMessage(&msg)

	log := logging.FromContext(ctx, s.logger).With(
		zap.String("user", msg.Destination()),
		zap.Stringer("priority", msg.Priority()),
	)

	if err := s.client.Submit(ctx, s.endpoint, msg); err != nil {
		var se *pushover.SubmitError
		if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
			log.Warn("message rejected", zap.Int("status", se.StatusCode), zap.Error(err))
			return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamRejected, err)
		}
		log.Error("message submission failed", zap.String("stage", string(pushover.StageOf(err))), zap.Error(err))
		return nil, err
	}

	log.Info("message sent")
	return &domain.SendMessageResponse{
		Status:   "sent",
		User:     msg.Destination(),
		Priority: msg.Priority().String(),
		SentAt:   time.Now().UTC(),
	}, nil
}

// ---- private helpers ----

func (s *MessageService) buildMessage(req domain.SendMessageRequest) (*pushover.Message, error) {
	user := req.User
	if user == "" {
		user = s.defaults.User
	}
	if user == "" {
		return nil, domain.ErrNoRecipient
	}
	device := req.Device
	if device == "" {
		device = s.defaults.Device
	}

	prio, err := pushover.ParsePriority(string(req.Priority))
	if err != nil {
		return nil, err
	}

	msg := pushover.NewMessage()
	if err := msg.SetDestination(user); err != nil {
		return nil, err
	}
	if err := msg.SetBody(req.Message); err != nil {
		return nil, err
	}
	if req.Title != "" {
		if err := msg.SetTitle(req.Title); err != nil {
			return nil, err
		}
	}
	if device != "" {
		if err := msg.SetDevice(device); err != nil {
			return nil, err
		}
	}
	if err := msg.SetPriority(prio); err != nil {
		return nil, err
	}
	return msg, nil
}
