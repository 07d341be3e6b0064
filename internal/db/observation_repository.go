package db

import (
	"context"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ObservationRepository stores the one-per-day observations: temperatures, cervical mucus
// and sperm panels. Writes upsert on (user_id, date).
type ObservationRepository struct {
	database *gorm.DB
}

func NewObservationRepository(database *gorm.DB) *ObservationRepository {
	return &ObservationRepository{database: database}
}

func perDayConflict(columns ...string) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}
}

func (repo *ObservationRepository) UpsertTemperature(ctx context.Context, record *models.TemperatureRecord) error {
	return repo.database.WithContext(ctx).
		Clauses(perDayConflict("time", "value", "notes")).
		Create(record).Error
}

func (repo *ObservationRepository) ListTemperaturesSince(ctx context.Context, userID uint, from time.Time) ([]models.TemperatureRecord, error) {
	records := make([]models.TemperatureRecord, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *ObservationRepository) UpsertCervicalMucus(ctx context.Context, record *models.CervicalMucusRecord) error {
	return repo.database.WithContext(ctx).
		Clauses(perDayConflict("type", "amount", "notes")).
		Create(record).Error
}

func (repo *ObservationRepository) ListCervicalMucusSince(ctx context.Context, userID uint, from time.Time) ([]models.CervicalMucusRecord, error) {
	records := make([]models.CervicalMucusRecord, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *ObservationRepository) UpsertSpermPanel(ctx context.Context, panel *models.SpermHealthPanel) error {
	return repo.database.WithContext(ctx).
		Clauses(perDayConflict("count", "motility", "morphology", "volume", "notes")).
		Create(panel).Error
}

func (repo *ObservationRepository) FindSpermPanel(ctx context.Context, userID uint, panelID uint) (models.SpermHealthPanel, error) {
	var panel models.SpermHealthPanel
	if err := repo.database.WithContext(ctx).Where("user_id = ? AND id = ?", userID, panelID).First(&panel).Error; err != nil {
		return models.SpermHealthPanel{}, err
	}
	return panel, nil
}

func (repo *ObservationRepository) LatestSpermPanel(ctx context.Context, userID uint) (models.SpermHealthPanel, error) {
	var panel models.SpermHealthPanel
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		First(&panel).Error; err != nil {
		return models.SpermHealthPanel{}, err
	}
	return panel, nil
}

func (repo *ObservationRepository) ListSpermPanelsSince(ctx context.Context, userID uint, from time.Time) ([]models.SpermHealthPanel, error) {
	panels := make([]models.SpermHealthPanel, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&panels).Error; err != nil {
		return nil, err
	}
	return panels, nil
}
