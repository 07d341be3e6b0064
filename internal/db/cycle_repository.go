package db

import (
	"context"

	"github.com/terraincognita07/fertilitrack/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

// ListRecent returns up to limit cycles, newest first.
func (repo *CycleRepository) ListRecent(ctx context.Context, userID uint, limit int) ([]models.CycleRecord, error) {
	cycles := make([]models.CycleRecord, 0, limit)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Limit(limit).
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) ListByUser(ctx context.Context, userID uint) ([]models.CycleRecord, error) {
	cycles := make([]models.CycleRecord, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC, id ASC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) FindByID(ctx context.Context, userID uint, cycleID uint) (models.CycleRecord, error) {
	var cycle models.CycleRecord
	if err := repo.database.WithContext(ctx).Where("user_id = ? AND id = ?", userID, cycleID).First(&cycle).Error; err != nil {
		return models.CycleRecord{}, err
	}
	return cycle, nil
}

func (repo *CycleRepository) Create(ctx context.Context, cycle *models.CycleRecord) error {
	return repo.database.WithContext(ctx).Create(cycle).Error
}

func (repo *CycleRepository) Save(ctx context.Context, cycle *models.CycleRecord) error {
	return repo.database.WithContext(ctx).Save(cycle).Error
}
