// Package view renders the dashboard with html/template.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"zephyr/internal/application/dashboard"
	"zephyr/internal/application/panel"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names accepted by Render
const (
	PageTemplate  = "page"
	PanelTemplate = "panel"
)

// PageData is the model of the full page
type PageData struct {
	dashboard.Page
	Days int
}

// PanelData is the model of one panel fragment
type PanelData struct {
	panel.View
	Days int
}

// Renderer implements echo.Renderer over the embedded templates
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	t, err := template.New("zephyr").Funcs(template.FuncMap{
		"panelData": func(v panel.View, days int) PanelData { return PanelData{View: v, Days: days} },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
