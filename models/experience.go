package models

import (
	"errors"
	"time"
)

// Experience is a bookable activity. Price is the caller-computed total for the booking.
type Experience struct {
	ID       int        `json:"id" bson:"id"`
	Title    string     `json:"title" bson:"title"`
	Location string     `json:"location" bson:"location"`
	Image    string     `json:"image" bson:"image"`
	Duration string     `json:"duration" bson:"duration"`
	Price    float64    `json:"price" bson:"price"`
	Date     *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Guests   int        `json:"guests" bson:"guests"`
}

type ExperiencePatch struct {
	Title    *string    `json:"title,omitempty"`
	Location *string    `json:"location,omitempty"`
	Image    *string    `json:"image,omitempty"`
	Duration *string    `json:"duration,omitempty"`
	Price    *float64   `json:"price,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Guests   *int       `json:"guests,omitempty"`
}

// Validate checks the field constraints of an activity. Id 0 is reserved as "unset".
func (e Experience) Validate() error {
	switch {
	case e.ID == 0:
		return errors.New("id is required")
	case !finite(e.Price) || e.Price < 0:
		return errors.New("price must be a non-negative number")
	case e.Guests <= 0:
		return errors.New("guests must be positive")
	}
	return nil
}

func (e Experience) Apply(p ExperiencePatch) Experience {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	if p.Price != nil {
		e.Price = *p.Price
	}
	if p.Date != nil {
		t := *p.Date
		e.Date = &t
	}
	if p.Guests != nil {
		e.Guests = *p.Guests
	}
	return e
}

func (e Experience) Clone() Experience {
	e.Date = cloneTime(e.Date)
	return e
}
