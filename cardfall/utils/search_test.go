package utils

import (
	"testing"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

func testCatalog() []*models.Card {
	return []*models.Card{
		{ID: 1, Name: "Crimson Phoenix"},
		{ID: 2, Name: "Azure Dragon"},
		{ID: 3, Name: "Phantom Fox"},
	}
}

func TestSearchCards(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantFirst int64
		wantEmpty bool
	}{
		{name: "exact name", query: "Azure Dragon", wantFirst: 2},
		{name: "partial lowercase", query: "phoenix", wantFirst: 1},
		{name: "typo still matches", query: "phnix", wantFirst: 1},
		{name: "no match", query: "zzzz", wantEmpty: true},
	}

	cards := testCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchCards(cards, tt.query)
			if tt.wantEmpty {
				if len(got) != 0 {
					t.Errorf("SearchCards(%q) = %d results, want none", tt.query, len(got))
				}
				return
			}
			if len(got) == 0 || got[0].ID != tt.wantFirst {
				t.Errorf("SearchCards(%q) first = %v, want card %d", tt.query, got, tt.wantFirst)
			}
		})
	}

	if got := SearchCards(cards, ""); len(got) != len(cards) {
		t.Errorf("empty query returned %d cards, want %d", len(got), len(cards))
	}
}

func TestBestCardMatch(t *testing.T) {
	cards := testCatalog()
	if got := BestCardMatch(cards, "fox"); got == nil || got.ID != 3 {
		t.Errorf("BestCardMatch(fox) = %v, want card 3", got)
	}
	if got := BestCardMatch(cards, "qqqq"); got != nil {
		t.Errorf("BestCardMatch(qqqq) = %v, want nil", got)
	}
}
