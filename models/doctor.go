package models

import "time"

// Doctor is a physician profile with its embedded availability configuration.
type Doctor struct {
	ID           string             `bson:"id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Specialty    string             `bson:"specialty" json:"specialty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Availability AvailabilityConfig `bson:"availability" json:"availability"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
