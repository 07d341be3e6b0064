package db

import (
	"context"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepository struct {
	database *gorm.DB
}

func NewContentRepository(database *gorm.DB) *ContentRepository {
	return &ContentRepository{database: database}
}

func (repo *ContentRepository) ListCatalog(ctx context.Context) ([]models.ContentItem, error) {
	items := make([]models.ContentItem, 0)
	if err := repo.database.WithContext(ctx).Order("published_at DESC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *ContentRepository) FindByID(ctx context.Context, contentID string) (models.ContentItem, error) {
	var item models.ContentItem
	if err := repo.database.WithContext(ctx).Where("id = ?", contentID).First(&item).Error; err != nil {
		return models.ContentItem{}, err
	}
	return item, nil
}

// UpsertItems inserts catalog entries or overwrites existing ones with the same id.
func (repo *ContentRepository) UpsertItems(ctx context.Context, items []models.ContentItem) error {
	if len(items) == 0 {
		return nil
	}
	return repo.database.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "summary", "category", "tags", "published_at"}),
		}).
		Create(&items).Error
}

func (repo *ContentRepository) ListInteractions(ctx context.Context, userID uint) ([]models.Interaction, error) {
	interactions := make([]models.Interaction, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

// RecordInteraction keeps a single row per (user, content, type) and refreshes its timestamp.
func (repo *ContentRepository) RecordInteraction(ctx context.Context, userID uint, contentID string, kind models.InteractionType, at time.Time) error {
	interaction := models.Interaction{
		UserID:    userID,
		ContentID: contentID,
		Type:      kind,
		Timestamp: at,
	}
	return repo.database.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "content_id"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"timestamp"}),
		}).
		Create(&interaction).Error
}
