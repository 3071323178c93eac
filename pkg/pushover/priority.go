package pushover

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority is the urgency of a notification. Only the five declared values
// are accepted by the API.
type Priority int

const (
	PriorityNoAlert             Priority = -2
	PriorityQuiet               Priority = -1
	PriorityDefault             Priority = 0
	PriorityHigh                Priority = 1
	PriorityRequireConfirmation Priority = 2
)

var priorityLabels = map[Priority]string{
	PriorityNoAlert:             "no-alert",
	PriorityQuiet:               "quiet",
	PriorityDefault:             "default",
	PriorityHigh:                "high",
	PriorityRequireConfirmation: "require-confirmation",
}

// IsSane reports whether p is one of the five declared priorities.
func (p Priority) IsSane() bool {
	switch p {
	case PriorityNoAlert, PriorityQuiet, PriorityDefault, PriorityHigh, PriorityRequireConfirmation:
		return true
	}
	return false
}

// IsPrioritySane is the function form of Priority.IsSane.
func IsPrioritySane(p Priority) bool {
	return p.IsSane()
}

func (p Priority) String() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// ParsePriority accepts a label as returned by String or a signed integer.
// An empty string yields PriorityDefault.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return PriorityDefault, nil
	}
	for p, label := range priorityLabels {
		if label == s {
			return p, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Priority(n).IsSane() {
		return PriorityDefault, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return Priority(n), nil
}
