package views

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Render writes the page as HTML.
func Render(w io.Writer, page Page) error {
	return pageTemplate.ExecuteTemplate(w, "index.html", page)
}
