package render

import (
	"slices"
	"strings"

	"github.com/sanjayvyas/portfolio/internal/models"
)

type Featurable interface {
	IsFeatured() bool
}

// Featured keeps the featured records, preserving order.
func Featured[T Featurable](records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.IsFeatured() {
			out = append(out, r)
		}
	}
	return out
}

// ByCategory keeps projects whose category matches, ignoring case. An empty
// category keeps everything.
func ByCategory(records []models.ProjectRecord, category string) []models.ProjectRecord {
	if category == "" {
		return records
	}
	out := make([]models.ProjectRecord, 0, len(records))
	for _, r := range records {
		if strings.EqualFold(r.Category, category) {
			out = append(out, r)
		}
	}
	return out
}

// Categories lists the distinct non-empty categories in first-seen order.
func Categories(records []models.ProjectRecord) []string {
	var out []string
	for _, r := range records {
		if r.Category == "" || slices.ContainsFunc(out, func(c string) bool { return strings.EqualFold(c, r.Category) }) {
			continue
		}
		out = append(out, r.Category)
	}
	return out
}
