package domain

import "time"

// RotationState is the singleton record remembering which link was served
// last under a rotation key. A nil LastLinkID means nothing was served yet.
type RotationState struct {
	Key        string
	LastLinkID *int64
	UpdatedAt  time.Time
}

// RotationPolicy decides which subset of the eligible links takes part in
// the rotation.
type RotationPolicy string

const (
	// PolicyUniform rotates over every eligible link regardless of kind.
	PolicyUniform RotationPolicy = "uniform"
	// PolicyPersonalizedFirst rotates over eligible personalised links and
	// only falls back to default links when there are none.
	PolicyPersonalizedFirst RotationPolicy = "personalized_first"
)

// Valid reports whether p is a known policy.
func (p RotationPolicy) Valid() bool {
	return p == PolicyUniform || p == PolicyPersonalizedFirst
}

// Pool returns the links the policy rotates over. The relative order of
// links is preserved.
func (p RotationPolicy) Pool(links []MarketingLink) []MarketingLink {
	if p != PolicyPersonalizedFirst {
		return links
	}
	var personalized, fallback []MarketingLink
	for _, l := range links {
		switch l.Kind {
		case LinkKindPersonalized:
			personalized = append(personalized, l)
		case LinkKindDefault:
			fallback = append(fallback, l)
		}
	}
	if len(personalized) > 0 {
		return personalized
	}
	return fallback
}

// IndexOf returns the position of the link with the given id, or -1.
func IndexOf(links []MarketingLink, id int64) int {
	for i := range links {
		if links[i].ID == id {
			return i
		}
	}
	return -1
}

// NextIndex returns the index following lastID in links, wrapping around.
// An unknown or nil lastID restarts the sequence at 0. links must not be
// empty.
func NextIndex(links []MarketingLink, lastID *int64) int {
	i := -1
	if lastID != nil {
		i = IndexOf(links, *lastID)
	}
	return (i + 1) % len(links)
}
