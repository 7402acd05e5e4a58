package core

import "testing"

func TestInteractionTypeWeight(t *testing.T) {
	tests := []struct {
		typ   InteractionType
		want  float64
		valid bool
	}{
		{InteractionLike, 2, true},
		{InteractionDislike, -2, true},
		{InteractionWatch, 0.75, true},
		{InteractionType("SHARE"), 0, false},
		{InteractionType(""), 0, false},
	}
	for _, tt := range tests {
		if got := tt.typ.Weight(); got != tt.want {
			t.Errorf("%q.Weight() = %v, want %v", tt.typ, got, tt.want)
		}
		if got := tt.typ.Valid(); got != tt.valid {
			t.Errorf("%q.Valid() = %v, want %v", tt.typ, got, tt.valid)
		}
	}
}

func TestRatingCategoryFromStars(t *testing.T) {
	tests := []struct {
		stars      int
		want       RatingCategory
		wantWeight int
	}{
		{1, RatingDetractor, -5},
		{2, RatingDetractor, -5},
		{3, RatingNeutral, 1},
		{4, RatingPromoter, 5},
		{5, RatingPromoter, 5},
	}
	for _, tt := range tests {
		got := RatingCategoryFromStars(tt.stars)
		if got != tt.want {
			t.Errorf("RatingCategoryFromStars(%d) = %s, want %s", tt.stars, got, tt.want)
		}
		if got.Weight() != tt.wantWeight {
			t.Errorf("RatingCategoryFromStars(%d).Weight() = %d, want %d", tt.stars, got.Weight(), tt.wantWeight)
		}
	}
}

func TestParseGenreRoundTrip(t *testing.T) {
	for i := 0; i < GenreCount; i++ {
		g := Genre(i)
		parsed, ok := ParseGenre(g.String())
		if !ok || parsed != g {
			t.Errorf("ParseGenre(%q) = (%v, %v), want (%v, true)", g.String(), parsed, ok, g)
		}
	}
	if _, ok := ParseGenre("POLKA"); ok {
		t.Error("ParseGenre should reject unknown names")
	}
	if Genre(99).String() != "UNKNOWN" {
		t.Errorf("out of range genre String() = %q, want UNKNOWN", Genre(99).String())
	}
}
