// Package loader fetches record resources concurrently and assembles them into
// a list ordered newest first.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sanjayvyas/portfolio/internal/models"
)

type Loader[T any] struct {
	kind     string
	fetcher  Fetcher
	paths    []string
	dateOf   func(T, time.Time) time.Time
	fallback []T
	now      func() time.Time
}

type Option[T any] func(*Loader[T])

// WithClock sets the time used for open-ended ranges.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(l *Loader[T]) { l.now = now }
}

func WithFallback[T any](fallback []T) Option[T] {
	return func(l *Loader[T]) { l.fallback = fallback }
}

func New[T any](kind string, fetcher Fetcher, paths []string, dateOf func(T, time.Time) time.Time, opts ...Option[T]) *Loader[T] {
	l := &Loader[T]{
		kind:    kind,
		fetcher: fetcher,
		paths:   slices.Clone(paths),
		dateOf:  dateOf,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func NewProjectLoader(fetcher Fetcher, paths []string, opts ...Option[models.ProjectRecord]) *Loader[models.ProjectRecord] {
	opts = append([]Option[models.ProjectRecord]{WithFallback(FallbackProjects())}, opts...)
	return New("projects", fetcher, paths, projectDate, opts...)
}

func NewExperienceLoader(fetcher Fetcher, paths []string, opts ...Option[models.ExperienceRecord]) *Loader[models.ExperienceRecord] {
	return New("experience", fetcher, paths, experienceDate, opts...)
}

// Paths returns the configured resource paths.
func (l *Loader[T]) Paths() []string {
	return slices.Clone(l.paths)
}

// Load fetches every path and returns the successfully decoded records sorted
// newest first. Resources that fail are dropped. If the aggregation itself
// fails, a copy of the fallback list is returned in its own order.
func (l *Loader[T]) Load(ctx context.Context) []T {
	records, err := l.aggregate(ctx)
	if err != nil {
		slog.Error("Failed to load records, using fallback", "kind", l.kind, "fallback", len(l.fallback), "error", err)
		return slices.Clone(l.fallback)
	}
	return records
}

func (l *Loader[T]) aggregate(ctx context.Context) (records []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("aggregating %s panicked: %v", l.kind, r)
		}
	}()

	var mu sync.Mutex
	records = make([]T, 0, len(l.paths))

	eg, egCtx := errgroup.WithContext(ctx)
	for _, path := range l.paths {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("loading %s panicked: %v", path, r)
				}
			}()

			record, err := l.fetchOne(egCtx, path)
			if err != nil {
				slog.Warn("Failed to load resource", "kind", l.kind, "path", path, "error", err)
				return nil
			}

			mu.Lock()
			records = append(records, record)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	l.sort(records)
	return records, nil
}

func (l *Loader[T]) fetchOne(ctx context.Context, path string) (T, error) {
	var record T
	data, err := l.fetcher.Fetch(ctx, path)
	if err != nil {
		return record, err
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return record, nil
}

func (l *Loader[T]) sort(records []T) {
	now := l.now()
	dates := make([]time.Time, len(records))
	idx := make([]int, len(records))
	for i := range records {
		idx[i] = i
		dates[i] = l.dateOf(records[i], now)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return dates[b].Compare(dates[a])
	})

	sorted := make([]T, len(records))
	for i, j := range idx {
		sorted[i] = records[j]
	}
	copy(records, sorted)
}
