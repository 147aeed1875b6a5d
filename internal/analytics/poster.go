package analytics

import (
	"fmt"
	"strings"
)

const (
	posterTitleWidth    = 34
	posterDirectorWidth = 30
	posterBorder        = "+-------------------------------------------+"
	posterBlank         = "|                                           |"
)

// Poster renders a fixed-width ASCII card for the top-rated listing.
func Poster(title, director string, year int) string {
	lines := []string{
		posterBorder,
		posterBlank,
		fmt.Sprintf("|  %-*s       |", posterTitleWidth, truncate(title, posterTitleWidth)),
		posterBlank,
		fmt.Sprintf("|  Director: %-*s |", posterDirectorWidth, truncate(director, posterDirectorWidth)),
		posterBlank,
		fmt.Sprintf("|           %-4d                            |", year),
		posterBorder,
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
