package models

import "fmt"

// Statistics holds the engagement counters of an Item. Counters never go below zero.
type Statistics struct {
	Likes     int64
	ViewCount int64
	Contacts  int64
}

// NewStatistics constructs Statistics or returns an error if any counter is negative.
func NewStatistics(likes, viewCount, contacts int64) (Statistics, error) {
	switch {
	case likes < 0:
		return Statistics{}, fmt.Errorf("likes must not be negative, got %d", likes)
	case viewCount < 0:
		return Statistics{}, fmt.Errorf("viewCount must not be negative, got %d", viewCount)
	case contacts < 0:
		return Statistics{}, fmt.Errorf("contacts must not be negative, got %d", contacts)
	}
	return Statistics{Likes: likes, ViewCount: viewCount, Contacts: contacts}, nil
}

// Valid reports whether every counter is non-negative.
func (s Statistics) Valid() bool {
	return s.Likes >= 0 && s.ViewCount >= 0 && s.Contacts >= 0
}

// Apply returns a copy of s with the counter selected by e adjusted by e.Delta,
// clamped at zero.
func (s Statistics) Apply(e Engagement) Statistics {
	switch e.Kind {
	case EngagementLike:
		s.Likes = clampAdd(s.Likes, e.Delta)
	case EngagementView:
		s.ViewCount = clampAdd(s.ViewCount, e.Delta)
	case EngagementContact:
		s.Contacts = clampAdd(s.Contacts, e.Delta)
	}
	return s
}

func clampAdd(v, d int64) int64 {
	if v += d; v < 0 {
		return 0
	}
	return v
}

// EngagementKind names the counter an Engagement targets.
type EngagementKind string

// Known engagement kinds.
const (
	EngagementLike    EngagementKind = "like"
	EngagementView    EngagementKind = "view"
	EngagementContact EngagementKind = "contact"
)

// Engagement is a single counter adjustment reported by the event pipeline.
// Delta may be negative (e.g. an unlike).
type Engagement struct {
	Kind  EngagementKind
	Delta int64
}

// NewEngagement validates kind and delta.
func NewEngagement(kind string, delta int64) (Engagement, error) {
	k := EngagementKind(kind)
	switch k {
	case EngagementLike, EngagementView, EngagementContact:
	default:
		return Engagement{}, fmt.Errorf("unknown engagement kind %q", kind)
	}
	if delta == 0 {
		return Engagement{}, fmt.Errorf("engagement delta must not be zero")
	}
	return Engagement{Kind: k, Delta: delta}, nil
}
