// Package views holds the embedded HTML templates for the vault pages.
package views

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html partials/*.html
var files embed.FS

// New returns a template engine over the embedded files.
func New() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("json", toJSON)
	engine.AddFunc("label", label)
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("percent", func(f float64) float64 { return f * 100 })
	return engine
}

// toJSON inlines chart data into <script> blocks.
func toJSON(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// label turns a column name like release_year into "Release Year".
func label(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
