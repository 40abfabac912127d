package entity

import "strings"

// Status is the delivery status of a message as shown in search results.
type Status int

const (
	StatusOther Status = iota
	StatusReceived
	StatusSent
	StatusSentDelivered
	StatusSentDisplayed
)

// ParseStatus maps the store's status strings onto Status.
// Unknown or transient states (sending, failed) collapse to StatusOther.
func ParseStatus(s string) Status {
	switch strings.ToLower(s) {
	case "received":
		return StatusReceived
	case "sent":
		return StatusSent
	case "delivered":
		return StatusSentDelivered
	case "read", "played", "displayed":
		return StatusSentDisplayed
	default:
		return StatusOther
	}
}

func (s Status) String() string {
	switch s {
	case StatusReceived:
		return "received"
	case StatusSent:
		return "sent"
	case StatusSentDelivered:
		return "sent-delivered"
	case StatusSentDisplayed:
		return "sent-displayed"
	default:
		return "other"
	}
}
