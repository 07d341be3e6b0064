package db

import (
	"context"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
	"gorm.io/gorm"
)

type PartnerRepository struct {
	database *gorm.DB
}

func NewPartnerRepository(database *gorm.DB) *PartnerRepository {
	return &PartnerRepository{database: database}
}

func (repo *PartnerRepository) Create(ctx context.Context, link *models.PartnerLink) error {
	return repo.database.WithContext(ctx).Create(link).Error
}

func (repo *PartnerRepository) FindPendingByInviteCode(ctx context.Context, code string) (models.PartnerLink, error) {
	var link models.PartnerLink
	if err := repo.database.WithContext(ctx).
		Where("invite_code = ? AND status = ?", code, models.PartnerLinkPending).
		First(&link).Error; err != nil {
		return models.PartnerLink{}, err
	}
	return link, nil
}

// Accept claims a pending link. It returns gorm.ErrRecordNotFound when the link is gone or
// another user accepted it first.
func (repo *PartnerRepository) Accept(ctx context.Context, linkID uint, partnerID uint, acceptedAt time.Time) error {
	result := repo.database.WithContext(ctx).
		Model(&models.PartnerLink{}).
		Where("id = ? AND status = ?", linkID, models.PartnerLinkPending).
		Updates(map[string]any{
			"partner_id":  partnerID,
			"status":      models.PartnerLinkAccepted,
			"accepted_at": acceptedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindAcceptedForUser returns the most recent accepted link the user is part of, on either side.
func (repo *PartnerRepository) FindAcceptedForUser(ctx context.Context, userID uint) (models.PartnerLink, bool, error) {
	var link models.PartnerLink
	result := repo.database.WithContext(ctx).
		Where("status = ? AND (owner_id = ? OR partner_id = ?)", models.PartnerLinkAccepted, userID, userID).
		Order("accepted_at DESC, id DESC").
		Limit(1).
		Find(&link)
	if result.Error != nil {
		return models.PartnerLink{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PartnerLink{}, false, nil
	}
	return link, true, nil
}
