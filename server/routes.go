package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(httprate.Limit(500, time.Minute))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.cacheControl)

	r.Mount("/static", http.FileServer(s.assets))

	r.Handle("/robots.txt", s.serveFile("static/robots.txt"))
	r.Handle("/favicon.svg", s.serveFile("static/images/favicon.svg"))

	r.Get("/", s.HandleIndex)
	r.Get("/projects", s.HandleProjects)
	r.Get("/fragments/projects", s.HandleProjectsFragment)
	r.Get("/fragments/experience", s.HandleExperienceFragment)
	r.With(httprate.LimitByIP(5, time.Minute)).Post("/contact", s.HandleContact)
	r.Post("/ui/nav", s.HandleNavEvent)

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", s.HandleAPIProjects)
		r.Get("/experience", s.HandleAPIExperience)
	})

	if s.db != nil {
		r.Get("/admin/login", s.HandleLoginPage)
		r.Post("/admin/login", s.HandleLogin)
		r.Get("/admin/logout", s.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.RequireAuth)
			r.Get("/admin", s.HandleAdmin)
			r.Post("/admin/messages/read", s.HandleMarkRead)
			r.Post("/admin/messages/delete", s.HandleDeleteMessage)
			r.Post("/admin/profile", s.HandleUpdateProfile)
			r.Post("/admin/password", s.HandleUpdatePassword)
			r.Post("/admin/reload", s.HandleReload)
		})
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
	})

	return r
}
