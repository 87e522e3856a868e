// Package views embeds the server-rendered HTML templates.
package views

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates
var files embed.FS

// Load parses every template. Pages are addressed by the name in their
// {{define}} block, e.g. "student/dashboard".
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files,
		"templates/*.html",
		"templates/student/*.html",
	)
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"plural": func(n int, singular, plural string) string {
			if n == 1 {
				return singular
			}
			return plural
		},
	}
}
