// Package analytics holds the derived metrics computed on demand from stored
// movie fields. Everything here is pure: no storage access, no clock reads.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"cinematic-vault/internal/models"
)

// ImpactVocabulary is the fixed word list behind CulturalImpactScore.
var ImpactVocabulary = []string{"influential", "groundbreaking", "iconic", "revolutionary", "landmark"}

// Fingerprint encodes title runes as 8-bit groups, then rating*10 as 8 bits,
// then the release year as 16 bits. Runes above 0xFF widen their group.
func Fingerprint(m models.Movie) string {
	var b strings.Builder
	for _, r := range m.Title {
		fmt.Fprintf(&b, "%08b", r)
	}
	fmt.Fprintf(&b, "%08b", int(math.Round(m.Rating*10)))
	fmt.Fprintf(&b, "%016b", m.ReleaseYear)
	return b.String()
}

// Similarity is the fraction of matching positions over the longer fingerprint.
// Positions past the end of the shorter one count as mismatches.
func Similarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}

	shared := len(a)
	if len(b) < shared {
		shared = len(b)
	}
	matches := 0
	for i := 0; i < shared; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(longest)
}

// FindSoulmate returns the candidate most similar to target, skipping target's
// own id. Ties keep the first candidate seen. ok is false when no candidate remains.
func FindSoulmate(target models.Movie, candidates []models.Movie) (soulmate models.Movie, similarity float64, ok bool) {
	targetPrint := Fingerprint(target)
	similarity = -1
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		if s := Similarity(targetPrint, Fingerprint(c)); s > similarity {
			soulmate, similarity, ok = c, s, true
		}
	}
	if !ok {
		return models.Movie{}, 0, false
	}
	return soulmate, similarity, true
}

// CulturalImpactScore is the share of ImpactVocabulary words that appear in text
// as whole words, ignoring case. Repeats count once, so the result is in [0, 1].
func CulturalImpactScore(text string) float64 {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	present := make(map[string]struct{}, len(words))
	for _, w := range words {
		present[w] = struct{}{}
	}

	hits := 0
	for _, v := range ImpactVocabulary {
		if _, ok := present[v]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(ImpactVocabulary))
}

// CinematicQuotient combines rating, age, cultural impact and award count.
// currentYear is passed in so callers control the clock.
func CinematicQuotient(m models.Movie, currentYear int) float64 {
	base := m.Rating * 10
	age := float64(currentYear-m.ReleaseYear) / 100 * 5
	impact := CulturalImpactScore(m.CulturalImpact) * 10
	awards := float64(len(m.Awards)) * 2
	return base + age + impact + awards
}

// LanguageDiversity counts distinct languages per release year, oldest first.
func LanguageDiversity(movies []models.Movie) []models.YearCount {
	byYear := make(map[int]map[string]struct{})
	for _, m := range movies {
		langs, ok := byYear[m.ReleaseYear]
		if !ok {
			langs = make(map[string]struct{})
			byYear[m.ReleaseYear] = langs
		}
		langs[m.Language] = struct{}{}
	}

	out := make([]models.YearCount, 0, len(byYear))
	for year, langs := range byYear {
		out = append(out, models.YearCount{Year: year, Count: int64(len(langs))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// ScoredMovie pairs a movie with its cinematic quotient.
type ScoredMovie struct {
	Movie    models.Movie
	Quotient float64
}

// TopByQuotient ranks movies by quotient, highest first, keeping at most limit.
func TopByQuotient(movies []models.Movie, currentYear, limit int) []ScoredMovie {
	scored := make([]ScoredMovie, 0, len(movies))
	for _, m := range movies {
		scored = append(scored, ScoredMovie{Movie: m, Quotient: CinematicQuotient(m, currentYear)})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Quotient > scored[j].Quotient })
	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
