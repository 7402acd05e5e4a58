package feature

import (
	"testing"

	"github.com/rushteam/mediarec/core"
)

func TestGenreEncoder_Encode(t *testing.T) {
	tests := []struct {
		name        string
		genres      []core.Genre
		wantHot     []core.Genre
		wantSkipped int
	}{
		{
			name:    "single genre",
			genres:  []core.Genre{core.GenreHorror},
			wantHot: []core.Genre{core.GenreHorror},
		},
		{
			name:    "multiple genres",
			genres:  []core.Genre{core.GenreFantasy, core.GenreRomance, core.GenreScienceTechnology},
			wantHot: []core.Genre{core.GenreFantasy, core.GenreRomance, core.GenreScienceTechnology},
		},
		{
			name:   "empty input yields zero vector",
			genres: nil,
		},
		{
			name:        "out of range index is skipped not written",
			genres:      []core.Genre{core.GenreHorror, core.Genre(99), core.Genre(-1)},
			wantHot:     []core.Genre{core.GenreHorror},
			wantSkipped: 2,
		},
		{
			name:    "duplicate genres collapse to one slot",
			genres:  []core.Genre{core.GenreSciFi, core.GenreSciFi},
			wantHot: []core.Genre{core.GenreSciFi},
		},
	}

	var enc GenreEncoder
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec, skipped := enc.Encode(tt.genres)

			if len(vec) != core.GenreCount {
				t.Fatalf("vector length = %d, want %d", len(vec), core.GenreCount)
			}
			if len(skipped) != tt.wantSkipped {
				t.Fatalf("skipped = %v, want %d entries", skipped, tt.wantSkipped)
			}

			hot := make(map[core.Genre]bool, len(tt.wantHot))
			for _, g := range tt.wantHot {
				hot[g] = true
			}
			for i, v := range vec {
				want := 0.0
				if hot[core.Genre(i)] {
					want = 1.0
				}
				if v != want {
					t.Errorf("vec[%d] = %v, want %v", i, v, want)
				}
			}
		})
	}
}

func TestGenreEncoder_EncodeIsDeterministic(t *testing.T) {
	var enc GenreEncoder
	genres := []core.Genre{core.GenreHorror, core.GenreThrillerMystery}

	first, _ := enc.Encode(genres)
	second, _ := enc.Encode(genres)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("vec[%d] differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenreEncoder_EncodeNames(t *testing.T) {
	var enc GenreEncoder

	vec, unknown := enc.EncodeNames([]string{"HORROR", "ROMANCE", "POLKA"})
	if len(unknown) != 1 || unknown[0] != "POLKA" {
		t.Fatalf("unknown = %v, want [POLKA]", unknown)
	}
	if vec[core.GenreHorror] != 1.0 || vec[core.GenreRomance] != 1.0 {
		t.Fatalf("expected HORROR and ROMANCE slots set, got %v", vec)
	}
}
