package models

import "time"

// Address is a typed point of interest. Addresses are deliberately decoupled
// from trips: the trip reference is optional and deleting a trip leaves its
// addresses in place.
type Address struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	TripID    string    `bson:"tripId,omitempty" json:"tripId,omitempty"`
	Type      string    `bson:"type" json:"type"`
	Name      string    `bson:"name" json:"name"`
	Line      string    `bson:"line,omitempty" json:"line,omitempty"`
	Location  *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Website   string    `bson:"website,omitempty" json:"website,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
