package models

import "time"

// TripTemplate is a curated starting point for a new trip.
type TripTemplate struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Destination  string    `bson:"destination" json:"destination"`
	DurationDays int       `bson:"durationDays" json:"durationDays"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Tags         []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Location     *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
