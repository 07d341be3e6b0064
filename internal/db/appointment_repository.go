package db

import (
	"context"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	database *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{database: database}
}

func (repo *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return repo.database.WithContext(ctx).Create(appointment).Error
}

// ListByOwnerRange returns appointments dated within [from, to], both inclusive.
func (repo *AppointmentRepository) ListByOwnerRange(ctx context.Context, ownerID uint, from time.Time, to time.Time) ([]models.Appointment, error) {
	return repo.list(ctx, repo.database.Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, from, to))
}

// ListSharedByOwnerRange is ListByOwnerRange restricted to appointments shared with a partner.
func (repo *AppointmentRepository) ListSharedByOwnerRange(ctx context.Context, ownerID uint, from time.Time, to time.Time) ([]models.Appointment, error) {
	return repo.list(ctx, repo.database.Where("owner_id = ? AND is_shared = ? AND date >= ? AND date <= ?", ownerID, true, from, to))
}

func (repo *AppointmentRepository) list(ctx context.Context, query *gorm.DB) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := query.WithContext(ctx).Order("date ASC, id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}
