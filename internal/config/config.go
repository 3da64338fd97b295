// Package config reads the runtime settings from the environment and the site
// manifest.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sanjayvyas/portfolio/internal/models"
)

type Config struct {
	Port         string
	DatabaseURL  string
	DataBaseURL  string
	CacheTTL     time.Duration
	ContactDelay time.Duration
	SMTP         SMTPConfig
	Site         Site
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// Enabled reports whether real mail delivery is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Site is the manifest describing the page: profile defaults, navigation
// sections and the record resources to load.
type Site struct {
	Profile    models.Profile   `yaml:"profile"`
	Sections   []models.Section `yaml:"sections"`
	Projects   []string         `yaml:"projects"`
	Experience []string         `yaml:"experience"`
}

func ParseSite(data []byte) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return site, fmt.Errorf("failed to parse site manifest: %w", err)
	}
	return site, nil
}

// Load builds the configuration from environment variables and the site manifest.
func Load(siteManifest []byte) (*Config, error) {
	site, err := ParseSite(siteManifest)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := durationEnv("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	contactDelay, err := durationEnv("CONTACT_DELAY", 2*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         stringEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DataBaseURL:  os.Getenv("DATA_BASE_URL"),
		CacheTTL:     cacheTTL,
		ContactDelay: contactDelay,
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     stringEnv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			To:       stringEnv("CONTACT_TO", site.Profile.Email),
		},
		Site: site,
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
