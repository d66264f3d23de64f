package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates the tracked click events.
type EventType string

const (
	// EventLinkClick is emitted once per rotation dispatch.
	EventLinkClick       EventType = "link_click"
	EventInvitationClick EventType = "invitation_click"
	EventFormSubmitted   EventType = "form_submitted"
	EventPaymentDone     EventType = "payment_done"
	EventPaymentPending  EventType = "payment_pending"
	EventNotInterested   EventType = "not_interested"
)

var eventTypes = []EventType{
	EventLinkClick,
	EventInvitationClick,
	EventFormSubmitted,
	EventPaymentDone,
	EventPaymentPending,
	EventNotInterested,
}

// EventTypes returns every known event type.
func EventTypes() []EventType {
	out := make([]EventType, len(eventTypes))
	copy(out, eventTypes)
	return out
}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	for _, v := range eventTypes {
		if v == t {
			return true
		}
	}
	return false
}

// AttributionEvent is an append-only record of a tracked click. LinkID is
// set for dispatch attributions and nil for page-level clicks.
type AttributionEvent struct {
	ID        uuid.UUID
	Type      EventType
	LinkID    *int64
	CreatedAt time.Time
}
