package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

var (
	ErrCycleOverlap           = errors.New("cycle overlaps an existing cycle")
	ErrCycleStartDateRequired = errors.New("cycle start date is required")
	ErrCycleEndBeforeStart    = errors.New("cycle end date is before its start date")
	ErrInvalidFlow            = errors.New("invalid flow")
)

type CycleRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.CycleRecord, error)
	FindByID(ctx context.Context, userID uint, cycleID uint) (models.CycleRecord, error)
	Create(ctx context.Context, cycle *models.CycleRecord) error
	Save(ctx context.Context, cycle *models.CycleRecord) error
}

type CycleService struct {
	cycles   CycleRepository
	location *time.Location
}

// CycleUpdate carries the optional fields of a PATCH. Nil leaves the stored value alone.
type CycleUpdate struct {
	EndDate *time.Time
	Flow    *models.Flow
	Notes   *string
}

func NewCycleService(cycles CycleRepository, location *time.Location) *CycleService {
	return &CycleService{cycles: cycles, location: location}
}

func (service *CycleService) List(ctx context.Context, userID uint) ([]models.CycleRecord, error) {
	cycles, err := service.cycles.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cycles: %w", err)
	}
	return cycles, nil
}

func (service *CycleService) Create(ctx context.Context, userID uint, cycle models.CycleRecord, now time.Time) (models.CycleRecord, error) {
	cycle.UserID = userID
	cycle.Notes = strings.TrimSpace(cycle.Notes)
	if err := service.validate(cycle, now); err != nil {
		return models.CycleRecord{}, err
	}
	if err := service.checkOverlap(ctx, cycle); err != nil {
		return models.CycleRecord{}, err
	}

	if err := service.cycles.Create(ctx, &cycle); err != nil {
		return models.CycleRecord{}, fmt.Errorf("create cycle: %w", err)
	}
	return cycle, nil
}

func (service *CycleService) Update(ctx context.Context, userID uint, cycleID uint, update CycleUpdate, now time.Time) (models.CycleRecord, error) {
	cycle, err := service.cycles.FindByID(ctx, userID, cycleID)
	if err != nil {
		return models.CycleRecord{}, notFound(err, ErrCycleNotFound)
	}

	if update.EndDate != nil {
		endDate := *update.EndDate
		cycle.EndDate = &endDate
	}
	if update.Flow != nil {
		cycle.Flow = *update.Flow
	}
	if update.Notes != nil {
		cycle.Notes = strings.TrimSpace(*update.Notes)
	}

	if err := service.validate(cycle, now); err != nil {
		return models.CycleRecord{}, err
	}
	if update.EndDate != nil {
		if err := service.checkOverlap(ctx, cycle); err != nil {
			return models.CycleRecord{}, err
		}
	}

	if err := service.cycles.Save(ctx, &cycle); err != nil {
		return models.CycleRecord{}, fmt.Errorf("update cycle: %w", err)
	}
	return cycle, nil
}

func (service *CycleService) validate(cycle models.CycleRecord, now time.Time) error {
	if cycle.StartDate.IsZero() {
		return ErrCycleStartDateRequired
	}
	if cycle.StartDate.After(CalendarDay(now, service.location)) {
		return ErrFutureDate
	}
	if cycle.EndDate != nil && cycle.EndDate.Before(cycle.StartDate) {
		return ErrCycleEndBeforeStart
	}
	if !cycle.Flow.Valid() {
		return ErrInvalidFlow
	}
	return nil
}

// checkOverlap treats each cycle as the closed range [start, end], where a missing end
// collapses the range to the start day.
func (service *CycleService) checkOverlap(ctx context.Context, candidate models.CycleRecord) error {
	existing, err := service.cycles.ListByUser(ctx, candidate.UserID)
	if err != nil {
		return fmt.Errorf("load cycles: %w", err)
	}

	candidateEnd := cycleEnd(candidate)
	for _, other := range existing {
		if other.ID == candidate.ID && candidate.ID != 0 {
			continue
		}
		if !candidate.StartDate.After(cycleEnd(other)) && !other.StartDate.After(candidateEnd) {
			return ErrCycleOverlap
		}
	}
	return nil
}

func cycleEnd(cycle models.CycleRecord) time.Time {
	if cycle.EndDate == nil {
		return cycle.StartDate
	}
	return *cycle.EndDate
}
