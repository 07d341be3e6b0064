package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/models"
)

const maxAppointmentTitleLength = 120

var (
	ErrAppointmentTitleRequired = errors.New("appointment title is required")
	ErrAppointmentTitleTooLong  = errors.New("appointment title too long")
	ErrAppointmentDateRequired  = errors.New("appointment date is required")
	ErrAppointmentRangeInvalid  = errors.New("appointment range invalid")
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	ListByOwnerRange(ctx context.Context, ownerID uint, from time.Time, to time.Time) ([]models.Appointment, error)
}

type AppointmentService struct {
	appointments AppointmentRepository
}

func NewAppointmentService(appointments AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

func (service *AppointmentService) Create(ctx context.Context, ownerID uint, appointment models.Appointment) (models.Appointment, error) {
	appointment.OwnerID = ownerID
	appointment.Title = strings.TrimSpace(appointment.Title)
	appointment.Location = strings.TrimSpace(appointment.Location)
	appointment.Notes = strings.TrimSpace(appointment.Notes)

	switch {
	case appointment.Title == "":
		return models.Appointment{}, ErrAppointmentTitleRequired
	case len([]rune(appointment.Title)) > maxAppointmentTitleLength:
		return models.Appointment{}, ErrAppointmentTitleTooLong
	case appointment.Date.IsZero():
		return models.Appointment{}, ErrAppointmentDateRequired
	}

	if appointment.Time != nil {
		clock := strings.TrimSpace(*appointment.Time)
		if clock == "" {
			appointment.Time = nil
		} else {
			if err := ValidateClock(clock); err != nil {
				return models.Appointment{}, err
			}
			clock = analytics.NormalizeClock(clock)
			appointment.Time = &clock
		}
	}

	if err := service.appointments.Create(ctx, &appointment); err != nil {
		return models.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	return appointment, nil
}

func (service *AppointmentService) List(ctx context.Context, ownerID uint, from time.Time, to time.Time) ([]models.Appointment, error) {
	if to.Before(from) {
		return nil, ErrAppointmentRangeInvalid
	}
	appointments, err := service.appointments.ListByOwnerRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	return appointments, nil
}
