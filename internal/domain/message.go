package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/notifyhub/pushover/pkg/pushover"
)

// Field limits enforced by the Pushover API.
const (
	MaxMessageLen = 1024
	MaxTitleLen   = 250
	MaxDeviceLen  = 25
	MaxUserLen    = 30
)

// PriorityInput is the raw priority of a request. In JSON it may be a label
// ("high"), a numeric string ("1"), a number (1) or null; empty means default.
type PriorityInput string

func (p *PriorityInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriorityInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("priority must be a string or an integer: %w", err)
	}
	*p = PriorityInput(n.String())
	return nil
}

// SendMessageRequest is the inbound payload for a single notification.
type SendMessageRequest struct {
	User     string `json:"user" validate:"omitempty,max=30,alphanum"`
	Message  string `json:"message" validate:"required,max=1024"`
	Title    string `json:"title,omitempty" validate:"max=250"`
	Device   string `json:"device,omitempty" validate:"omitempty,max=25"`
	Priority PriorityInput `json:"priority,omitempty"`
}

// SendMessageResponse is returned once the API accepted a message.
type SendMessageResponse struct {
	Status   string    `json:"status"`
	User     string    `json:"user"`
	Priority string    `json:"priority"`
	SentAt   time.Time `json:"sent_at"`
}

var validate = validator.New()

// Validate checks field limits and the priority. Recipient presence is
// checked later because the service may fill in a default.
func (r *SendMessageRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			names := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				names = append(names, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(names, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if _, err := pushover.ParsePriority(string(r.Priority)); err != nil {
		return err
	}
	return nil
}
