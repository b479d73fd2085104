package models

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Place is a record returned by the places lookup collaborator.
type Place struct {
	ID          string      `json:"id" bson:"id"`
	Name        string      `json:"name" bson:"name"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
	Address     string      `json:"address" bson:"address"`
	Types       []string    `json:"types,omitempty" bson:"types,omitempty"`
	Rating      *float64    `json:"rating,omitempty" bson:"rating,omitempty"`
	PhotoRef    string      `json:"photoRef,omitempty" bson:"photoRef,omitempty"`
}

// NearbyQuery describes a places search around a point.
type NearbyQuery struct {
	Origin       Coordinates `json:"origin"`
	Type         string      `json:"type,omitempty"`
	Category     string      `json:"category,omitempty"`
	RadiusMeters int         `json:"radiusMeters,omitempty"`
}
