package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sanjayvyas/portfolio/internal/cache"
	"github.com/sanjayvyas/portfolio/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type Database interface {
	Close()
	Migrate(ctx context.Context) error
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) error
	SaveContactMessage(ctx context.Context, m models.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id string, read bool) error
	DeleteContactMessage(ctx context.Context, id string) error
	VerifyPassword(ctx context.Context, password string) (bool, error)
	SetPassword(ctx context.Context, password string) error
}

// ErrNoProfile is returned when the profile row has not been written yet.
var ErrNoProfile = errors.New("profile not set")

type database struct {
	db    *pgxpool.Pool
	cache *cache.Cache
}

func NewDatabase(ctx context.Context, dbURL string, c *cache.Cache) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &database{
		db:    pool,
		cache: c,
	}, nil
}

func (d *database) Close() {
	d.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS profile (
		id          INTEGER PRIMARY KEY CHECK (id = 1),
		name        TEXT NOT NULL DEFAULT '',
		title       TEXT NOT NULL DEFAULT '',
		subtitle    TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		avatar      TEXT NOT NULL DEFAULT '',
		email       TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		subject    TEXT NOT NULL DEFAULT '',
		message    TEXT NOT NULL,
		read       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS contact_messages_created_at_idx ON contact_messages (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

func (d *database) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (d *database) GetProfile(ctx context.Context) (models.Profile, error) {
	if p, ok := d.cache.GetProfile(); ok {
		return *p, nil
	}

	var p models.Profile
	err := d.db.QueryRow(ctx, `SELECT name, title, subtitle, description, avatar, email, location FROM profile WHERE id = 1`).
		Scan(&p.Name, &p.Title, &p.Subtitle, &p.Description, &p.Avatar, &p.Email, &p.Location)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, ErrNoProfile
	}
	if err != nil {
		return p, err
	}

	d.cache.SetProfile(p)
	return p, nil
}

func (d *database) UpdateProfile(ctx context.Context, p models.Profile) error {
	_, err := d.db.Exec(ctx, `
		INSERT INTO profile (id, name, title, subtitle, description, avatar, email, location)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET name=$1, title=$2, subtitle=$3, description=$4, avatar=$5, email=$6, location=$7`,
		p.Name, p.Title, p.Subtitle, p.Description, p.Avatar, p.Email, p.Location)
	if err == nil {
		d.cache.InvalidateProfile()
	}
	return err
}

func (d *database) SaveContactMessage(ctx context.Context, m models.ContactMessage) error {
	_, err := d.db.Exec(ctx, `INSERT INTO contact_messages (id, name, email, subject, message, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.CreatedAt)
	return err
}

func (d *database) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := d.db.Query(ctx, `SELECT id::text, name, email, subject, message, read, created_at FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (d *database) MarkContactMessageRead(ctx context.Context, id string, read bool) error {
	_, err := d.db.Exec(ctx, `UPDATE contact_messages SET read = $1 WHERE id = $2`, read, id)
	return err
}

func (d *database) DeleteContactMessage(ctx context.Context, id string) error {
	_, err := d.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	return err
}

func (d *database) VerifyPassword(ctx context.Context, password string) (bool, error) {
	var hashedPassword string
	err := d.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = 'admin_password'`).Scan(&hashedPassword)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// Plaintext seeded by hand; upgrade it to a bcrypt hash on first use.
	if len(hashedPassword) < 60 {
		if password != "" && password == hashedPassword {
			_ = d.SetPassword(ctx, password)
			return true, nil
		}
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil, nil
}

func (d *database) SetPassword(ctx context.Context, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(ctx, `INSERT INTO settings (key, value) VALUES ('admin_password', $1) ON CONFLICT (key) DO UPDATE SET value = $1`, string(hashedPassword))
	return err
}
