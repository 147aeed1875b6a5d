package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Awards is a list of award names persisted as comma-joined text.
type Awards []string

// ParseAwards splits comma-separated input, trimming blanks and dropping empty tokens.
func ParseAwards(raw string) Awards {
	if strings.TrimSpace(raw) == "" {
		return Awards{}
	}
	parts := strings.Split(raw, ",")
	awards := make(Awards, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			awards = append(awards, p)
		}
	}
	return awards
}

func (a Awards) String() string {
	return strings.Join(a, ",")
}

func (a Awards) Value() (driver.Value, error) {
	for _, award := range a {
		if strings.Contains(award, ",") {
			return nil, fmt.Errorf("award %q contains a comma", award)
		}
	}
	return a.String(), nil
}

func (a *Awards) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = Awards{}
	case string:
		*a = ParseAwards(v)
	case []byte:
		*a = ParseAwards(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Awards", src)
	}
	return nil
}
