package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/sanjayvyas/portfolio/internal/cache"
	"github.com/sanjayvyas/portfolio/internal/config"
	"github.com/sanjayvyas/portfolio/internal/contact"
	"github.com/sanjayvyas/portfolio/internal/database"
	"github.com/sanjayvyas/portfolio/internal/models"
	"github.com/sanjayvyas/portfolio/internal/render"
	"github.com/sanjayvyas/portfolio/internal/ui"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

type ProjectLoader interface {
	Load(ctx context.Context) []models.ProjectRecord
}

type ExperienceLoader interface {
	Load(ctx context.Context) []models.ExperienceRecord
}

// Content is what the public pages are built from.
type Content struct {
	Site       config.Site
	Projects   ProjectLoader
	Experience ExperienceLoader
	Store      *cache.Cache
	Renderer   *render.Renderer
	Contact    *contact.Service
}

type Server struct {
	version    string
	port       string
	server     *http.Server
	assets     http.FileSystem
	tmplFunc   ExecuteTemplateFunc
	sessions   map[string]time.Time
	sessionsMu sync.RWMutex
	db         database.Database
	site       config.Site
	projects   ProjectLoader
	experience ExperienceLoader
	store      *cache.Cache
	renderer   *render.Renderer
	events     *ui.Dispatcher
}

// NewServer wires the handlers. db may be nil, in which case the admin area is
// not mounted and the profile comes from the site manifest.
func NewServer(version string, port string, assets http.FileSystem, tmplFunc ExecuteTemplateFunc, db database.Database, content Content) *Server {

	s := &Server{
		version:    version,
		port:       port,
		assets:     assets,
		tmplFunc:   tmplFunc,
		sessions:   make(map[string]time.Time),
		sessionsMu: sync.RWMutex{},
		db:         db,
		site:       content.Site,
		projects:   content.Projects,
		experience: content.Experience,
		store:      content.Store,
		renderer:   content.Renderer,
		events:     ui.NewDispatcher(),
	}
	if content.Contact != nil {
		content.Contact.Bind(s.events)
	}

	s.server = &http.Server{
		Addr:              ":" + port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) Close() {
	if err := s.server.Close(); err != nil {
		panic(err)
	}
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
