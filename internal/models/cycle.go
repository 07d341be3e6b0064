package models

import "time"

type Flow string

const (
	FlowLight  Flow = "light"
	FlowMedium Flow = "medium"
	FlowHeavy  Flow = "heavy"
)

func (flow Flow) Valid() bool {
	switch flow {
	case "", FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}

type CycleRecord struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex:uidx_cycle_user_start" json:"-"`
	StartDate time.Time  `gorm:"type:date;not null;uniqueIndex:uidx_cycle_user_start" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date"`
	Flow      Flow       `gorm:"not null;default:''" json:"flow,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}
