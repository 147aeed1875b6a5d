// Package sentiment scores free text on a polarity scale from -1 (negative)
// to 1 (positive).
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Analyzer returns the polarity of text in [-1, 1].
type Analyzer interface {
	Polarity(text string) float64
}

// AnalyzerFunc adapts a plain function to Analyzer.
type AnalyzerFunc func(text string) float64

func (f AnalyzerFunc) Polarity(text string) float64 {
	return f(text)
}

// VaderAnalyzer scores text with the VADER lexicon and rules. Polarity is the
// normalized compound score.
type VaderAnalyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (a *VaderAnalyzer) Polarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return clamp(a.sia.PolarityScores(text).Compound)
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
