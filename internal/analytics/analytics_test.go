package analytics

import (
	"strings"
	"testing"

	"cinematic-vault/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	m := models.Movie{Title: "Up", Rating: 8.2, ReleaseYear: 2009}

	got := Fingerprint(m)

	// 'U'=85, 'p'=112, 82, 2009
	want := "01010101" + "01110000" + "01010010" + "0000011111011001"
	assert.Equal(t, want, got)
	assert.Equal(t, got, Fingerprint(m))
}

func TestFingerprintRoundsRating(t *testing.T) {
	// 82.6 rounds to 83; truncation would give 82
	m := models.Movie{Title: "A", Rating: 8.26, ReleaseYear: 2000}
	assert.True(t, strings.HasPrefix(Fingerprint(m)[8:], "01010011"))
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "1010", b: "1010", want: 1},
		{name: "half", a: "1010", b: "1001", want: 0.5},
		{name: "length mismatch counts tail as misses", a: "1010", b: "10101111", want: 0.5},
		{name: "symmetric", a: "10101111", b: "1010", want: 0.5},
		{name: "both empty", a: "", b: "", want: 1},
		{name: "one empty", a: "", b: "11", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilaritySelfIdentity(t *testing.T) {
	movies := []models.Movie{
		{Title: "Amélie", Rating: 8.3, ReleaseYear: 2001},
		{Title: "", Rating: 0, ReleaseYear: 1800},
		{Title: "千と千尋の神隠し", Rating: 8.6, ReleaseYear: 2001},
	}
	for _, m := range movies {
		fp := Fingerprint(m)
		assert.Equal(t, 1.0, Similarity(fp, fp), m.Title)
	}
}

func TestFindSoulmate(t *testing.T) {
	target := models.Movie{ID: 1, Title: "Heat", Rating: 8.3, ReleaseYear: 1995}
	candidates := []models.Movie{
		target,
		{ID: 2, Title: "Zzzzzzzzzz", Rating: 1.0, ReleaseYear: 1800},
		{ID: 3, Title: "Heap", Rating: 8.3, ReleaseYear: 1995},
		{ID: 4, Title: "Heap", Rating: 8.3, ReleaseYear: 1995},
	}

	soulmate, similarity, ok := FindSoulmate(target, candidates)
	require.True(t, ok)
	assert.Equal(t, uint(3), soulmate.ID, "first seen wins ties")
	assert.Greater(t, similarity, 0.9)
	assert.Less(t, similarity, 1.0)
}

func TestFindSoulmateWithoutCandidates(t *testing.T) {
	target := models.Movie{ID: 1, Title: "Heat"}

	_, _, ok := FindSoulmate(target, []models.Movie{target})
	assert.False(t, ok)
}

func TestCulturalImpactScore(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{text: "a groundbreaking and iconic film", want: 0.4},
		{text: "", want: 0},
		{text: "ICONIC, iconic; Iconic!", want: 0.2},
		{text: "influential groundbreaking iconic revolutionary landmark", want: 1},
		{text: "iconically landmarks", want: 0},
		{text: "Revolutionary.", want: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.InDelta(t, tt.want, CulturalImpactScore(tt.text), 1e-9)
		})
	}
}

func TestCulturalImpactScoreBounds(t *testing.T) {
	texts := []string{
		strings.Repeat("iconic landmark ", 50),
		"influential influential groundbreaking iconic revolutionary landmark landmark",
		"nothing to see",
	}
	for _, text := range texts {
		score := CulturalImpactScore(text)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestCinematicQuotient(t *testing.T) {
	m := models.Movie{
		Rating:         8.0,
		ReleaseYear:    2000,
		CulturalImpact: "a groundbreaking and iconic film",
		Awards:         models.ParseAwards("Oscar,Globe"),
	}

	assert.InDelta(t, 89.2, CinematicQuotient(m, 2024), 1e-9)
}

func TestCinematicQuotientNoAwards(t *testing.T) {
	m := models.Movie{Rating: 5, ReleaseYear: 2024}
	assert.InDelta(t, 50.0, CinematicQuotient(m, 2024), 1e-9)
}

func TestLanguageDiversity(t *testing.T) {
	movies := []models.Movie{
		{ReleaseYear: 2001, Language: "French"},
		{ReleaseYear: 1999, Language: "English"},
		{ReleaseYear: 2001, Language: "English"},
		{ReleaseYear: 2001, Language: "French"},
	}

	assert.Equal(t, []models.YearCount{
		{Year: 1999, Count: 1},
		{Year: 2001, Count: 2},
	}, LanguageDiversity(movies))
}

func TestTopByQuotient(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Rating: 5, ReleaseYear: 2020},
		{ID: 2, Rating: 9, ReleaseYear: 2020},
		{ID: 3, Rating: 7, ReleaseYear: 2020},
	}

	top := TopByQuotient(movies, 2024, 2)
	require.Len(t, top, 2)
	assert.Equal(t, uint(2), top[0].Movie.ID)
	assert.Equal(t, uint(3), top[1].Movie.ID)
}

func TestPoster(t *testing.T) {
	poster := Poster(strings.Repeat("T", 50), strings.Repeat("D", 40), 1977)

	lines := strings.Split(poster, "\n")
	require.Len(t, lines, 8)
	for _, l := range lines {
		assert.Len(t, []rune(l), 45)
	}
	assert.Contains(t, poster, strings.Repeat("T", 34)+"       |")
	assert.NotContains(t, poster, strings.Repeat("T", 35))
	assert.Contains(t, poster, "Director: "+strings.Repeat("D", 30)+" |")
	assert.Contains(t, poster, "1977")
}
