// File: models/cart.go
package models

import (
	"math"
	"time"
)

// CartSnapshot is the full state of a trip cart, as persisted and as served to readers.
type CartSnapshot struct {
	Accommodations    []Accommodation    `json:"accommodations" bson:"accommodations"`
	Experiences       []Experience       `json:"experiences" bson:"experiences"`
	NearbySuggestions []NearbySuggestion `json:"nearbySuggestions" bson:"nearbySuggestions"`
}

// EmptyCart returns a snapshot with non-nil, empty collections so it encodes as [] rather than null.
func EmptyCart() CartSnapshot {
	return CartSnapshot{
		Accommodations:    []Accommodation{},
		Experiences:       []Experience{},
		NearbySuggestions: []NearbySuggestion{},
	}
}

// Clone deep-copies the snapshot.
func (c CartSnapshot) Clone() CartSnapshot {
	out := CartSnapshot{
		Accommodations:    make([]Accommodation, 0, len(c.Accommodations)),
		Experiences:       make([]Experience, 0, len(c.Experiences)),
		NearbySuggestions: make([]NearbySuggestion, 0, len(c.NearbySuggestions)),
	}
	for _, a := range c.Accommodations {
		out.Accommodations = append(out.Accommodations, a.Clone())
	}
	for _, e := range c.Experiences {
		out.Experiences = append(out.Experiences, e.Clone())
	}
	for _, s := range c.NearbySuggestions {
		out.NearbySuggestions = append(out.NearbySuggestions, s.Clone())
	}
	return out
}

// CartResponse is what the HTTP layer returns for a cart read.
type CartResponse struct {
	CartSnapshot
	TotalAmount float64 `json:"totalAmount"`
	TotalItems  int     `json:"totalItems"`
}

type CartTotals struct {
	TotalAmount float64 `json:"totalAmount"`
	TotalItems  int     `json:"totalItems"`
}

// finite rejects NaN and ±Inf, which JSON cannot encode.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
