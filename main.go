package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/sanjayvyas/portfolio/internal/cache"
	"github.com/sanjayvyas/portfolio/internal/config"
	"github.com/sanjayvyas/portfolio/internal/contact"
	"github.com/sanjayvyas/portfolio/internal/database"
	"github.com/sanjayvyas/portfolio/internal/loader"
	"github.com/sanjayvyas/portfolio/internal/render"
	"github.com/sanjayvyas/portfolio/server"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

//go:embed site.yaml
var siteManifest []byte

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Println(server.FormatBuildVersion(version))
		return
	}

	var (
		tmplFunc server.ExecuteTemplateFunc
		assets   http.FileSystem
	)

	cfg, err := config.Load(siteManifest)
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	tmpl, err := template.New("").ParseFS(templatesFiles, "templates/*.html")
	if err != nil {
		panic(fmt.Errorf("failed to parse templates: %w", err))
	}
	tmplFunc = tmpl.ExecuteTemplate
	assets = http.FS(staticFiles)

	renderer, err := render.New()
	if err != nil {
		panic(err)
	}

	var fetcher loader.Fetcher
	if cfg.DataBaseURL != "" {
		fetcher, err = loader.NewHTTPFetcher(cfg.DataBaseURL, nil)
		if err != nil {
			panic(fmt.Errorf("failed to configure data source: %w", err))
		}
	} else {
		staticRoot, err := fs.Sub(staticFiles, "static")
		if err != nil {
			panic(err)
		}
		fetcher = loader.NewFSFetcher(staticRoot)
	}

	store := cache.NewCache(cfg.CacheTTL)

	var db database.Database
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err = database.NewDatabase(ctx, cfg.DatabaseURL, store)
		if err != nil {
			cancel()
			panic(fmt.Errorf("failed to initialize database: %w", err))
		}
		if err := db.Migrate(ctx); err != nil {
			cancel()
			panic(err)
		}
		cancel()
		defer db.Close()
	} else {
		slog.Info("DATABASE_URL not set, admin area disabled")
	}

	var sender contact.Sender = contact.SimulatedSender{Delay: cfg.ContactDelay}
	if cfg.SMTP.Enabled() {
		sender = contact.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.To)
	}
	var inbox contact.Store
	if db != nil {
		inbox = db
	}

	srv := server.NewServer(version, cfg.Port, assets, tmplFunc, db, server.Content{
		Site:       cfg.Site,
		Projects:   loader.NewProjectLoader(fetcher, cfg.Site.Projects),
		Experience: loader.NewExperienceLoader(fetcher, cfg.Site.Experience),
		Store:      store,
		Renderer:   renderer,
		Contact:    contact.NewService(sender, inbox),
	})

	go srv.Start()

	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.String("version", version))
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Failed to shut down cleanly", "error", err)
	}
}
