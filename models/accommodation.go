package models

import (
	"errors"
	"time"
)

// Accommodation is a bookable stay held in the trip cart.
// TotalAmount is computed by the caller (nights, rate, occupancy) and stored as given.
type Accommodation struct {
	ID            string     `json:"id" bson:"id"`
	Title         string     `json:"title" bson:"title"`
	Location      string     `json:"location" bson:"location"`
	Image         string     `json:"image" bson:"image"`
	PricePerNight float64    `json:"pricePerNight" bson:"pricePerNight"`
	Rating        float64    `json:"rating" bson:"rating"`
	CheckIn       *time.Time `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut      *time.Time `json:"checkOut,omitempty" bson:"checkOut,omitempty"`
	Guests        int        `json:"guests" bson:"guests"`
	Rooms         int        `json:"rooms" bson:"rooms"`
	TotalAmount   float64    `json:"totalAmount" bson:"totalAmount"`
}

// AccommodationPatch is a sparse update; nil fields are left unchanged.
type AccommodationPatch struct {
	Title         *string    `json:"title,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Image         *string    `json:"image,omitempty"`
	PricePerNight *float64   `json:"pricePerNight,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	CheckIn       *time.Time `json:"checkIn,omitempty"`
	CheckOut      *time.Time `json:"checkOut,omitempty"`
	Guests        *int       `json:"guests,omitempty"`
	Rooms         *int       `json:"rooms,omitempty"`
	TotalAmount   *float64   `json:"totalAmount,omitempty"`
}

// Validate checks the field constraints of a stay.
func (a Accommodation) Validate() error {
	switch {
	case a.ID == "":
		return errors.New("id is required")
	case !finite(a.PricePerNight) || a.PricePerNight < 0:
		return errors.New("pricePerNight must be a non-negative number")
	case !finite(a.TotalAmount) || a.TotalAmount < 0:
		return errors.New("totalAmount must be a non-negative number")
	case !finite(a.Rating):
		return errors.New("rating must be a finite number")
	case a.Guests <= 0:
		return errors.New("guests must be positive")
	case a.Rooms <= 0:
		return errors.New("rooms must be positive")
	case a.CheckIn != nil && a.CheckOut != nil && a.CheckOut.Before(*a.CheckIn):
		return errors.New("checkOut must not precede checkIn")
	}
	return nil
}

// Apply returns a copy of a with the non-nil patch fields merged in.
func (a Accommodation) Apply(p AccommodationPatch) Accommodation {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.PricePerNight != nil {
		a.PricePerNight = *p.PricePerNight
	}
	if p.Rating != nil {
		a.Rating = *p.Rating
	}
	if p.CheckIn != nil {
		t := *p.CheckIn
		a.CheckIn = &t
	}
	if p.CheckOut != nil {
		t := *p.CheckOut
		a.CheckOut = &t
	}
	if p.Guests != nil {
		a.Guests = *p.Guests
	}
	if p.Rooms != nil {
		a.Rooms = *p.Rooms
	}
	if p.TotalAmount != nil {
		a.TotalAmount = *p.TotalAmount
	}
	return a
}

// Clone returns a copy that shares no pointers with a.
func (a Accommodation) Clone() Accommodation {
	a.CheckIn = cloneTime(a.CheckIn)
	a.CheckOut = cloneTime(a.CheckOut)
	return a
}
