package models

import "time"

const (
	MinTemperatureCelsius = 35.0
	MaxTemperatureCelsius = 42.0
	MaxPercentMeasurement = 100.0
)

type TemperatureRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_temperature_user_date" json:"-"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_temperature_user_date" json:"date"`
	Time      string    `gorm:"not null;default:''" json:"time,omitempty"`
	Value     float64   `gorm:"not null" json:"value"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type MucusType string

const (
	MucusDry      MucusType = "dry"
	MucusSticky   MucusType = "sticky"
	MucusCreamy   MucusType = "creamy"
	MucusEggWhite MucusType = "egg-white"
)

func (mucus MucusType) Valid() bool {
	switch mucus {
	case MucusDry, MucusSticky, MucusCreamy, MucusEggWhite:
		return true
	default:
		return false
	}
}

type MucusAmount string

const (
	MucusAmountLight    MucusAmount = "light"
	MucusAmountMedium   MucusAmount = "medium"
	MucusAmountAbundant MucusAmount = "abundant"
)

func (amount MucusAmount) Valid() bool {
	switch amount {
	case MucusAmountLight, MucusAmountMedium, MucusAmountAbundant:
		return true
	default:
		return false
	}
}

type CervicalMucusRecord struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"not null;uniqueIndex:uidx_mucus_user_date" json:"-"`
	Date      time.Time   `gorm:"type:date;not null;uniqueIndex:uidx_mucus_user_date" json:"date"`
	Type      MucusType   `gorm:"not null" json:"type"`
	Amount    MucusAmount `gorm:"not null" json:"amount"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"-"`
	UpdatedAt time.Time   `json:"-"`
}

// SpermHealthPanel stores one semen analysis. Missing measurements stay nil.
type SpermHealthPanel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_sperm_user_date" json:"-"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_sperm_user_date" json:"date"`
	Count      *float64  `json:"count"`
	Motility   *float64  `json:"motility"`
	Morphology *float64  `json:"morphology"`
	Volume     *float64  `json:"volume"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
