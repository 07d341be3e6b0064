package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/fertilitrack/internal/analytics"
	"github.com/terraincognita07/fertilitrack/internal/models"
)

const MaxRecommendationLimit = 50

var (
	ErrInvalidInteractionType = errors.New("invalid interaction type")
	ErrInvalidContentItem     = errors.New("invalid content item")
)

type ContentRepository interface {
	ListCatalog(ctx context.Context) ([]models.ContentItem, error)
	FindByID(ctx context.Context, contentID string) (models.ContentItem, error)
	UpsertItems(ctx context.Context, items []models.ContentItem) error
	ListInteractions(ctx context.Context, userID uint) ([]models.Interaction, error)
	RecordInteraction(ctx context.Context, userID uint, contentID string, kind models.InteractionType, at time.Time) error
}

type ContentService struct {
	content  ContentRepository
	maxLimit int
}

func NewContentService(content ContentRepository, maxLimit int) *ContentService {
	if maxLimit <= 0 {
		maxLimit = MaxRecommendationLimit
	}
	return &ContentService{content: content, maxLimit: maxLimit}
}

func (service *ContentService) Recommend(ctx context.Context, userID uint, limit int) ([]models.ContentItem, error) {
	if limit > service.maxLimit {
		limit = service.maxLimit
	}

	interactions, err := service.content.ListInteractions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	catalog, err := service.content.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return analytics.RecommendContent(interactions, catalog, limit), nil
}

func (service *ContentService) RecordInteraction(ctx context.Context, userID uint, contentID string, kind models.InteractionType, now time.Time) error {
	if !kind.Valid() {
		return ErrInvalidInteractionType
	}
	if _, err := service.content.FindByID(ctx, contentID); err != nil {
		return notFound(err, ErrContentNotFound)
	}
	if err := service.content.RecordInteraction(ctx, userID, contentID, kind, now.UTC()); err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}

// ImportCatalog normalizes and upserts catalog entries. Items without an ID get a fresh UUID.
func (service *ContentService) ImportCatalog(ctx context.Context, items []models.ContentItem) ([]models.ContentItem, error) {
	normalized := make([]models.ContentItem, 0, len(items))
	for index, item := range items {
		item.Title = strings.TrimSpace(item.Title)
		item.Summary = strings.TrimSpace(item.Summary)
		item.Category = models.ContentCategory(strings.ToLower(strings.TrimSpace(string(item.Category))))
		if item.Title == "" || !item.Category.Valid() || item.PublishedAt.IsZero() {
			return nil, fmt.Errorf("item %d (%q): %w", index, item.Title, ErrInvalidContentItem)
		}

		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.Tags = normalizeTags(item.Tags)
		item.PublishedAt = item.PublishedAt.UTC()
		normalized = append(normalized, item)
	}

	if err := service.content.UpsertItems(ctx, normalized); err != nil {
		return nil, fmt.Errorf("store catalog: %w", err)
	}
	return normalized, nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
