package domain

import "time"

// LinkKind distinguishes the generic site links from the personalised
// links handed out to ambassadors.
type LinkKind string

const (
	LinkKindDefault      LinkKind = "default"
	LinkKindPersonalized LinkKind = "personalized"
)

// Valid reports whether k is one of the known kinds.
func (k LinkKind) Valid() bool {
	return k == LinkKindDefault || k == LinkKindPersonalized
}

// MarketingLink is a destination the rotation can send visitors to. Links
// are never hard-deleted; Deleted marks a soft delete.
type MarketingLink struct {
	ID             int64
	Kind           LinkKind
	DestinationURL string
	ShortCode      *string
	Ambassador     Ambassador
	Active         bool
	Deleted        bool
	ExpiresAt      *time.Time
	ClickCount     int64
	CreatedAt      time.Time
}

// Ambassador identifies the person a personalised link belongs to. All
// fields are optional.
type Ambassador struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// Eligible reports whether the link may be served at instant now: it must
// be active, not deleted and not past its expiry.
func (l MarketingLink) Eligible(now time.Time) bool {
	if l.Deleted || !l.Active {
		return false
	}
	return l.ExpiresAt == nil || l.ExpiresAt.After(now)
}
