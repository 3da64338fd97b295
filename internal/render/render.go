// Package render turns records into HTML fragments and collects them into
// named containers that page templates place into the markup.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"slices"
	"strings"

	"github.com/sanjayvyas/portfolio/internal/models"
)

//go:embed templates/*.html
var fragmentFiles embed.FS

// Container is an ordered list of fragments standing in for a page element.
type Container struct {
	ID        string
	fragments []template.HTML
}

func NewContainer(id string) *Container {
	return &Container{ID: id}
}

func (c *Container) Append(fragment template.HTML) {
	c.fragments = append(c.fragments, fragment)
}

func (c *Container) Fragments() []template.HTML {
	if c == nil {
		return nil
	}
	return slices.Clone(c.fragments)
}

func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.fragments)
}

// HTML joins the fragments in append order.
func (c *Container) HTML() template.HTML {
	if c == nil {
		return ""
	}
	var b strings.Builder
	for _, f := range c.fragments {
		b.WriteString(string(f))
	}
	return template.HTML(b.String())
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(fragmentFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) ProjectCard(p models.ProjectRecord) (template.HTML, error) {
	return r.execute("project_card", p)
}

func (r *Renderer) ExperienceItem(e models.ExperienceRecord) (template.HTML, error) {
	return r.execute("experience_item", e)
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderProjects appends one card per record to c. A nil container is a no-op.
func (r *Renderer) RenderProjects(c *Container, records []models.ProjectRecord) {
	if c == nil {
		return
	}
	for _, p := range records {
		fragment, err := r.ProjectCard(p)
		if err != nil {
			slog.Error("Failed to render project", "title", p.Title, "error", err)
			continue
		}
		c.Append(fragment)
	}
}

// RenderExperience appends one timeline item per record to c. A nil container is a no-op.
func (r *Renderer) RenderExperience(c *Container, records []models.ExperienceRecord) {
	if c == nil {
		return
	}
	for _, e := range records {
		fragment, err := r.ExperienceItem(e)
		if err != nil {
			slog.Error("Failed to render experience", "title", e.Title, "company", e.Company, "error", err)
			continue
		}
		c.Append(fragment)
	}
}
