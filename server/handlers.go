package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sanjayvyas/portfolio/internal/contact"
	"github.com/sanjayvyas/portfolio/internal/database"
	"github.com/sanjayvyas/portfolio/internal/models"
	"github.com/sanjayvyas/portfolio/internal/render"
	"github.com/sanjayvyas/portfolio/internal/ui"
)

const (
	projectsContainerID   = "projects-grid"
	experienceContainerID = "experience-timeline"
)

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", nil); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

// loadProjects serves from the store when it can. A load whose request ended
// early is returned but not stored.
func (s *Server) loadProjects(ctx context.Context) []models.ProjectRecord {
	if projects, ok := s.store.GetProjects(); ok {
		return projects
	}
	projects := s.projects.Load(ctx)
	if ctx.Err() == nil {
		s.store.SetProjects(projects)
	}
	return projects
}

func (s *Server) loadExperience(ctx context.Context) []models.ExperienceRecord {
	if experience, ok := s.store.GetExperience(); ok {
		return experience
	}
	experience := s.experience.Load(ctx)
	if ctx.Err() == nil {
		s.store.SetExperience(experience)
	}
	return experience
}

func (s *Server) profile(ctx context.Context) models.Profile {
	if s.db == nil {
		return s.site.Profile
	}
	p, err := s.db.GetProfile(ctx)
	if err != nil {
		if !errors.Is(err, database.ErrNoProfile) {
			slog.Warn("Failed to load profile, using site defaults", "error", err)
		}
		return s.site.Profile
	}
	return p
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects := render.NewContainer(projectsContainerID)
	s.renderer.RenderProjects(projects, render.Featured(s.loadProjects(ctx)))

	experience := render.NewContainer(experienceContainerID)
	s.renderer.RenderExperience(experience, s.loadExperience(ctx))

	data := models.IndexPageData{
		Profile:     s.profile(ctx),
		Sections:    s.site.Sections,
		Projects:    projects.HTML(),
		Experience:  experience.HTML(),
		LastUpdated: time.Now().Format("Jan 2, 2006"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "index.html", data); err != nil {
		slog.Error("Failed to render index template", "error", err)
	}
}

func (s *Server) HandleProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")
	all := s.loadProjects(ctx)

	projects := render.NewContainer(projectsContainerID)
	s.renderer.RenderProjects(projects, render.ByCategory(all, category))

	data := models.ProjectsPageData{
		Profile:    s.profile(ctx),
		Sections:   s.site.Sections,
		Category:   category,
		Categories: render.Categories(all),
		Projects:   projects.HTML(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "projects.html", data); err != nil {
		slog.Error("Failed to render projects template", "error", err)
	}
}

func (s *Server) HandleProjectsFragment(w http.ResponseWriter, r *http.Request) {
	projects := render.ByCategory(s.loadProjects(r.Context()), r.URL.Query().Get("category"))
	if isTrue(r.URL.Query().Get("featured")) {
		projects = render.Featured(projects)
	}

	c := render.NewContainer(projectsContainerID)
	s.renderer.RenderProjects(c, projects)
	writeFragment(w, c)
}

func (s *Server) HandleExperienceFragment(w http.ResponseWriter, r *http.Request) {
	experience := s.loadExperience(r.Context())
	if isTrue(r.URL.Query().Get("featured")) {
		experience = render.Featured(experience)
	}

	c := render.NewContainer(experienceContainerID)
	s.renderer.RenderExperience(c, experience)
	writeFragment(w, c)
}

func (s *Server) HandleAPIProjects(w http.ResponseWriter, r *http.Request) {
	projects := render.ByCategory(s.loadProjects(r.Context()), r.URL.Query().Get("category"))
	if isTrue(r.URL.Query().Get("featured")) {
		projects = render.Featured(projects)
	}
	respondJSON(w, http.StatusOK, projects)
}

func (s *Server) HandleAPIExperience(w http.ResponseWriter, r *http.Request) {
	experience := s.loadExperience(r.Context())
	if isTrue(r.URL.Query().Get("featured")) {
		experience = render.Featured(experience)
	}
	respondJSON(w, http.StatusOK, experience)
}

type contactResult struct {
	Type    string
	Message string
}

func (s *Server) HandleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	err := s.events.Dispatch(r.Context(), ui.Event{
		Type:   ui.Submit,
		Target: contact.FormTarget,
		Form:   r.PostForm,
	})

	result := contactResult{Type: "success", Message: contact.UserMessage(err)}
	if err != nil {
		result.Type = "error"
		var verr *contact.ValidationError
		if !errors.As(err, &verr) {
			slog.Error("Failed to submit contact form", "error", err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "contact-result.html", result); err != nil {
		slog.Error("Failed to render contact result template", "error", err)
	}
}

// HandleNavEvent applies one navigation event to the posted state and returns
// the resulting state.
func (s *Server) HandleNavEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form")
		return
	}

	ev := ui.Event{
		Type:    ui.EventType(r.PostForm.Get("type")),
		Target:  r.PostForm.Get("target"),
		ScrollY: parseIntForm(r, "scroll_y"),
		Width:   parseIntForm(r, "width"),
	}
	switch ev.Type {
	case ui.Click, ui.Scroll, ui.Resize:
	default:
		respondError(w, http.StatusBadRequest, "Unsupported event type")
		return
	}

	nav := ui.NewNavigation(models.NavState{
		MenuOpen: isTrue(r.PostForm.Get("menu_open")),
		Scrolled: isTrue(r.PostForm.Get("scrolled")),
	})
	d := ui.NewDispatcher()
	nav.Bind(d)

	if err := d.Dispatch(r.Context(), ev); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to apply event")
		return
	}
	respondJSON(w, http.StatusOK, nav.State())
}

func writeFragment(w http.ResponseWriter, c *render.Container) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, string(c.HTML())); err != nil {
		slog.Error("Failed to write fragment", "container", c.ID, "error", err)
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func parseIntForm(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.PostForm.Get(name))
	if err != nil {
		return 0
	}
	return v
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		if strings.HasSuffix(path, ".svg") {
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
