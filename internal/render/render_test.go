package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjayvyas/portfolio/internal/models"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestProjectCardEmptyTechnologies(t *testing.T) {
	r := newRenderer(t)
	c := NewContainer("projects-grid")

	r.RenderProjects(c, []models.ProjectRecord{{Title: "Bare", Technologies: nil}})

	require.Equal(t, 1, c.Len())
	html := string(c.HTML())
	assert.Contains(t, html, "Bare")
	assert.Equal(t, 0, strings.Count(html, `class="tech-tag"`))
}

func TestProjectCardFields(t *testing.T) {
	r := newRenderer(t)

	card, err := r.ProjectCard(models.ProjectRecord{
		Title:        "Weather Dashboard",
		Description:  "Forecasts <live>",
		Technologies: []string{"Go", "HTMX"},
		GitHub:       "https://github.com/sanjayvyas/weather-dashboard",
		Live:         "https://weather-demo.com",
		Icon:         "fas fa-cloud-sun",
	})
	require.NoError(t, err)

	html := string(card)
	assert.Equal(t, 2, strings.Count(html, `class="tech-tag"`))
	assert.Contains(t, html, `<i class="fas fa-cloud-sun"></i>`)
	assert.Contains(t, html, `href="https://github.com/sanjayvyas/weather-dashboard"`)
	assert.Contains(t, html, `href="https://weather-demo.com"`)
	assert.Contains(t, html, "Forecasts &lt;live&gt;")
}

func TestProjectCardOmitsMissingLinks(t *testing.T) {
	r := newRenderer(t)

	card, err := r.ProjectCard(models.ProjectRecord{Title: "No links"})
	require.NoError(t, err)
	assert.NotContains(t, string(card), "<a ")
}

func TestProjectCardUnsafeURL(t *testing.T) {
	r := newRenderer(t)

	card, err := r.ProjectCard(models.ProjectRecord{Title: "x", GitHub: "javascript:alert(1)"})
	require.NoError(t, err)
	assert.NotContains(t, string(card), "javascript:")
}

func TestRenderProjectsKeepsOrder(t *testing.T) {
	r := newRenderer(t)
	c := NewContainer("projects-grid")

	r.RenderProjects(c, []models.ProjectRecord{{Title: "First"}, {Title: "Second"}, {Title: "Third"}})

	html := string(c.HTML())
	require.Equal(t, 3, c.Len())
	first := strings.Index(html, "First")
	second := strings.Index(html, "Second")
	third := strings.Index(html, "Third")
	assert.True(t, first < second && second < third)
}

func TestRenderNilContainerIsNoop(t *testing.T) {
	r := newRenderer(t)
	var c *Container

	assert.NotPanics(t, func() {
		r.RenderProjects(c, []models.ProjectRecord{{Title: "x"}})
		r.RenderExperience(c, []models.ExperienceRecord{{Title: "y"}})
	})
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.HTML())
	assert.Nil(t, c.Fragments())
}

func TestExperienceItem(t *testing.T) {
	r := newRenderer(t)
	c := NewContainer("experience-timeline")

	r.RenderExperience(c, []models.ExperienceRecord{{
		Title:        "Manager",
		Company:      "Jasons Catered Events",
		CompanyURL:   "https://example.com",
		Date:         "Aug 2016 - Present",
		Achievements: []string{"Coordinated menus", "Managed inventory"},
		Location:     "Remote",
	}})

	html := string(c.HTML())
	assert.Contains(t, html, "Aug 2016 - Present")
	assert.Contains(t, html, `href="https://example.com"`)
	assert.Equal(t, 2, strings.Count(html, "<li>"))
	assert.Contains(t, html, "Remote")
	assert.NotContains(t, html, "timeline-type")
}

func TestFeatured(t *testing.T) {
	projects := []models.ProjectRecord{
		{Title: "a", Featured: true},
		{Title: "b"},
		{Title: "c", Featured: true},
	}
	got := Featured(projects)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, "c", got[1].Title)

	assert.Empty(t, Featured([]models.ExperienceRecord{{Title: "x"}}))
	assert.Empty(t, Featured[models.ProjectRecord](nil))
}

func TestByCategoryAndCategories(t *testing.T) {
	projects := []models.ProjectRecord{
		{Title: "a", Category: "Web"},
		{Title: "b", Category: "cli"},
		{Title: "c", Category: "web"},
		{Title: "d"},
	}

	assert.Len(t, ByCategory(projects, ""), 4)
	web := ByCategory(projects, "WEB")
	require.Len(t, web, 2)
	assert.Equal(t, "c", web[1].Title)

	assert.Equal(t, []string{"Web", "cli"}, Categories(projects))
}
