package analytics

import (
	"sort"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

const DefaultRecommendationLimit = 10

// Affinity weights. An item collects every term that applies to it.
const (
	weightBookmarked    = 3
	weightLiked         = 2
	weightViewed        = 1
	weightCategoryMatch = 2
	weightTagOverlap    = 1
)

type interactionProfile struct {
	viewed     map[string]bool
	liked      map[string]bool
	bookmarked map[string]bool
	categories map[models.ContentCategory]bool
	tags       map[string]bool
}

type scoredContent struct {
	item  models.ContentItem
	score int
}

// RecommendContent ranks unviewed catalog items by affinity with the user's history and
// tops the list up with the newest unviewed items when too few items match.
func RecommendContent(interactions []models.Interaction, catalog []models.ContentItem, limit int) []models.ContentItem {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	profile := buildInteractionProfile(interactions, catalog)

	candidates := make([]scoredContent, 0, len(catalog))
	for _, item := range catalog {
		if profile.viewed[item.ID] {
			continue
		}
		score := AffinityScore(profile.bookmarked[item.ID], profile.liked[item.ID], false,
			profile.categories[item.Category], profile.sharesTag(item))
		if score > 0 {
			candidates = append(candidates, scoredContent{item: item, score: score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return newerFirst(candidates[i].item, candidates[j].item)
	})

	selected := make([]models.ContentItem, 0, limit)
	picked := make(map[string]bool, limit)
	for _, candidate := range candidates {
		if len(selected) == limit {
			break
		}
		selected = append(selected, candidate.item)
		picked[candidate.item.ID] = true
	}
	if len(selected) == limit {
		return selected
	}

	recent := make([]models.ContentItem, 0, len(catalog))
	for _, item := range catalog {
		if profile.viewed[item.ID] || picked[item.ID] {
			continue
		}
		recent = append(recent, item)
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return newerFirst(recent[i], recent[j])
	})
	for _, item := range recent {
		if len(selected) == limit {
			break
		}
		selected = append(selected, item)
	}
	return selected
}

// AffinityScore applies the weighted formula to already-evaluated flags.
func AffinityScore(bookmarked bool, liked bool, viewed bool, categoryMatch bool, tagOverlap bool) int {
	score := 0
	if bookmarked {
		score += weightBookmarked
	}
	if liked {
		score += weightLiked
	}
	if viewed {
		score += weightViewed
	}
	if categoryMatch {
		score += weightCategoryMatch
	}
	if tagOverlap {
		score += weightTagOverlap
	}
	return score
}

func buildInteractionProfile(interactions []models.Interaction, catalog []models.ContentItem) interactionProfile {
	profile := interactionProfile{
		viewed:     make(map[string]bool),
		liked:      make(map[string]bool),
		bookmarked: make(map[string]bool),
		categories: make(map[models.ContentCategory]bool),
		tags:       make(map[string]bool),
	}

	touched := make(map[string]bool, len(interactions))
	for _, interaction := range interactions {
		touched[interaction.ContentID] = true
		switch interaction.Type {
		case models.InteractionView:
			profile.viewed[interaction.ContentID] = true
		case models.InteractionLike:
			profile.liked[interaction.ContentID] = true
		case models.InteractionBookmark:
			profile.bookmarked[interaction.ContentID] = true
		}
	}

	for _, item := range catalog {
		if !touched[item.ID] {
			continue
		}
		profile.categories[item.Category] = true
		for _, tag := range item.Tags {
			profile.tags[tag] = true
		}
	}
	return profile
}

func (profile interactionProfile) sharesTag(item models.ContentItem) bool {
	for _, tag := range item.Tags {
		if profile.tags[tag] {
			return true
		}
	}
	return false
}

func newerFirst(a models.ContentItem, b models.ContentItem) bool {
	if !a.PublishedAt.Equal(b.PublishedAt) {
		return a.PublishedAt.After(b.PublishedAt)
	}
	return a.ID < b.ID
}
