package models

import "time"

type ContentCategory string

const (
	CategoryFertility    ContentCategory = "fertility"
	CategoryNutrition    ContentCategory = "nutrition"
	CategoryLifestyle    ContentCategory = "lifestyle"
	CategoryMentalHealth ContentCategory = "mental-health"
	CategoryMedical      ContentCategory = "medical"
	CategoryPartner      ContentCategory = "partner"
)

func (category ContentCategory) Valid() bool {
	switch category {
	case CategoryFertility, CategoryNutrition, CategoryLifestyle, CategoryMentalHealth, CategoryMedical, CategoryPartner:
		return true
	default:
		return false
	}
}

type ContentItem struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Summary     string          `json:"summary,omitempty"`
	Category    ContentCategory `gorm:"not null;index" json:"category"`
	Tags        []string        `gorm:"serializer:json" json:"tags"`
	PublishedAt time.Time       `gorm:"not null;index" json:"published_at"`
}

type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionLike     InteractionType = "like"
	InteractionBookmark InteractionType = "bookmark"
)

func (kind InteractionType) Valid() bool {
	switch kind {
	case InteractionView, InteractionLike, InteractionBookmark:
		return true
	default:
		return false
	}
}

// Interaction is unique per (user, content, type); repeating it refreshes Timestamp.
type Interaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;uniqueIndex:uidx_interaction_tuple" json:"user_id"`
	ContentID string          `gorm:"not null;uniqueIndex:uidx_interaction_tuple" json:"content_id"`
	Type      InteractionType `gorm:"not null;uniqueIndex:uidx_interaction_tuple" json:"type"`
	Timestamp time.Time       `gorm:"not null" json:"timestamp"`
}
