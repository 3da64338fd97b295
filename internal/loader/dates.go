package loader

import (
	"strings"
	"time"

	"github.com/sanjayvyas/portfolio/internal/models"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"Jan 2006",
	"January 2006",
	"Jan. 2006",
	"01/2006",
	"2006",
}

var rangeSeparators = []string{" - ", " – ", " — ", " to "}

// parseDate returns the zero time when s matches none of the known layouts.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// rangeEnd returns the end part of a date range such as "Aug 2016 - Present".
func rangeEnd(s string) string {
	for _, sep := range rangeSeparators {
		if i := strings.LastIndex(s, sep); i >= 0 {
			return strings.TrimSpace(s[i+len(sep):])
		}
	}
	return strings.TrimSpace(s)
}

func projectDate(p models.ProjectRecord, _ time.Time) time.Time {
	return parseDate(p.Date)
}

func experienceDate(e models.ExperienceRecord, now time.Time) time.Time {
	end := rangeEnd(e.Date)
	switch strings.ToLower(end) {
	case "present", "current", "now":
		return now
	}
	return parseDate(end)
}
