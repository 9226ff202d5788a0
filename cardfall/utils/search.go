package utils

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

// cardSource implements fuzzy.Source over a card slice.
type cardSource []*models.Card

func (s cardSource) Len() int {
	return len(s)
}

func (s cardSource) String(i int) string {
	return normalizeCardName(s[i].Name)
}

func normalizeCardName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SearchCards ranks the catalog against a free-text query. An empty
// query returns the catalog unchanged.
func SearchCards(cards []*models.Card, query string) []*models.Card {
	if query == "" {
		return cards
	}

	matches := fuzzy.FindFrom(normalizeCardName(query), cardSource(cards))
	results := make([]*models.Card, len(matches))
	for i, match := range matches {
		results[i] = cards[match.Index]
	}
	return results
}

// BestCardMatch returns the highest-ranked card for a query, or nil
// when nothing matches.
func BestCardMatch(cards []*models.Card, query string) *models.Card {
	results := SearchCards(cards, query)
	if len(results) == 0 {
		return nil
	}
	return results[0]
}
