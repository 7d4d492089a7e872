package entities

import (
	"fmt"
	"time"
)

// SpinType identifies which prize wheel a draw runs against
type SpinType string

const (
	SpinTypeNormal SpinType = "normal"
	SpinTypeVip    SpinType = "vip"
)

// ParseSpinType validates a raw variant string
func ParseSpinType(raw string) (SpinType, error) {
	switch SpinType(raw) {
	case SpinTypeNormal, SpinTypeVip:
		return SpinType(raw), nil
	default:
		return "", fmt.Errorf("unknown spin type: %q", raw)
	}
}

// IsValid checks if the spin type is one of the defined values
func (t SpinType) IsValid() bool {
	return t == SpinTypeNormal || t == SpinTypeVip
}

// SpinRejectionReason is the reason code attached to a rejected draw
type SpinRejectionReason string

const (
	SpinRejectionCapExceeded SpinRejectionReason = "cap_exceeded"
	SpinRejectionEmptyPool   SpinRejectionReason = "no_prizes_configured"
)

// SpinRecord is one entry in a guild's bounded draw history
type SpinRecord struct {
	User      string    `json:"user"`
	Type      SpinType  `json:"type"`
	Prize     string    `json:"prize"`
	Timestamp time.Time `json:"timestamp"`
}
