package models

import "time"

// Booking types.
const (
	BookingTypeFlight     = "flight"
	BookingTypeTrain      = "train"
	BookingTypeHotel      = "hotel"
	BookingTypeRestaurant = "restaurant"
	BookingTypeActivity   = "activity"
)

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a reservation attached to a trip. The trip reference is
// a soft reference by id, not a database-enforced relation. Optional fields
// are pointers so that unset values stay absent in storage and on the wire.
type Booking struct {
	ID          string     `bson:"id" json:"id"`
	TripID      string     `bson:"tripId" json:"tripId"`
	Type        string     `bson:"type" json:"type"`
	Title       string     `bson:"title" json:"title"`
	Date        time.Time  `bson:"date" json:"date"`
	EndDate     *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Price       *float64   `bson:"price,omitempty" json:"price,omitempty"`
	Currency    string     `bson:"currency,omitempty" json:"currency,omitempty"`
	Status      string     `bson:"status" json:"status"`
	Attachments []string   `bson:"attachments,omitempty" json:"attachments,omitempty"`
	Notes       string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}
