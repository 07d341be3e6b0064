package models

import "time"

type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Title       string    `gorm:"not null" json:"title"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Time        *string   `json:"time"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsShared    bool      `gorm:"not null;default:false" json:"is_shared"`
	AttendeeIDs []uint    `gorm:"serializer:json" json:"attendee_ids"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
