package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cinematic-vault/internal/models"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrInvalidField  = errors.New("invalid filter field")
	ErrInvalidValue  = errors.New("invalid filter value")
)

type fieldKind int

const (
	textField fieldKind = iota
	intField
	floatField
)

// filterableFields maps column names to how their values are compared.
var filterableFields = map[string]fieldKind{
	"title":               textField,
	"director":            textField,
	"language":            textField,
	"genre":               textField,
	"awards":              textField,
	"cinematographer":     textField,
	"soundtrack_composer": textField,
	"release_year":        intField,
	"runtime":             intField,
	"rating":              floatField,
	"box_office":          floatField,
	"critical_reception":  floatField,
}

// FilterFields lists the accepted filter columns in display order.
var FilterFields = []string{
	"title", "director", "release_year", "language", "rating", "genre", "awards",
	"cinematographer", "soundtrack_composer", "runtime", "box_office", "critical_reception",
}

// NormalizeField turns "Release Year" or "release_year" into the column name.
func NormalizeField(field string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(field)), " ", "_")
}

// criterion is a parsed field/value pair. Numeric fields are compared in SQL;
// text fields are matched in Go so that case folding covers all of Unicode,
// which SQLite's LOWER does not.
type criterion struct {
	column string
	kind   fieldKind
	number interface{}
	text   string
	exact  bool
}

// parseCriterion validates field/value. exact switches text fields from
// substring containment to equality; both are case-insensitive.
func parseCriterion(field, value string, exact bool) (criterion, error) {
	column := NormalizeField(field)
	kind, ok := filterableFields[column]
	if !ok {
		return criterion{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	c := criterion{column: column, kind: kind, exact: exact}
	value = strings.TrimSpace(value)
	switch kind {
	case intField:
		n, err := strconv.Atoi(value)
		if err != nil {
			return criterion{}, fmt.Errorf("%w: %s expects an integer, got %q", ErrInvalidValue, column, value)
		}
		c.number = n
	case floatField:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return criterion{}, fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidValue, column, value)
		}
		c.number = f
	default:
		c.text = strings.ToLower(value)
	}
	return c, nil
}

func (c criterion) isText() bool {
	return c.kind == textField
}

// where returns the SQL clause for a numeric criterion.
func (c criterion) where() (string, interface{}) {
	return c.column + " = ?", c.number
}

// matches reports whether a text criterion holds for m. Awards match per
// award, never across the comma that joins them in storage.
func (c criterion) matches(m *models.Movie) bool {
	for _, v := range textValues(m, c.column) {
		v = strings.ToLower(v)
		if c.exact {
			if v == c.text {
				return true
			}
		} else if strings.Contains(v, c.text) {
			return true
		}
	}
	return false
}

func textValues(m *models.Movie, column string) []string {
	switch column {
	case "title":
		return []string{m.Title}
	case "director":
		return []string{m.Director}
	case "language":
		return []string{m.Language}
	case "genre":
		return []string{m.Genre}
	case "cinematographer":
		return []string{m.Cinematographer}
	case "soundtrack_composer":
		return []string{m.SoundtrackComposer}
	case "awards":
		if len(m.Awards) == 0 {
			return []string{""}
		}
		return m.Awards
	}
	return nil
}
