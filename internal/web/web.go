// Package web holds the embedded HTML templates. Rendering is a pure
// function from the handler-supplied data to HTML; no template reads any
// global state.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded template set. Shared by the router and by
// handler tests so both render through the exact same views.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}
