package cache

import (
	"slices"
	"sync"
	"time"

	"github.com/sanjayvyas/portfolio/internal/models"
)

// Cache holds the loaded record lists and the profile for a limited time.
type Cache struct {
	mu            sync.RWMutex
	profile       *models.Profile
	profileExp    time.Time
	projects      []models.ProjectRecord
	projectsExp   time.Time
	experience    []models.ExperienceRecord
	experienceExp time.Time
	ttl           time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

func (c *Cache) GetProfile() (*models.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.profile == nil || time.Now().After(c.profileExp) {
		return nil, false
	}
	p := *c.profile
	return &p, true
}

func (c *Cache) SetProfile(p models.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.profile = &p
	c.profileExp = time.Now().Add(c.ttl)
}

func (c *Cache) GetProjects() ([]models.ProjectRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.projects == nil || time.Now().After(c.projectsExp) {
		return nil, false
	}
	return slices.Clone(c.projects), true
}

// SetProjects stores a copy of projects. A nil slice is stored as empty so that
// an empty load is still a cache hit.
func (c *Cache) SetProjects(projects []models.ProjectRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.projects = append(make([]models.ProjectRecord, 0, len(projects)), projects...)
	c.projectsExp = time.Now().Add(c.ttl)
}

func (c *Cache) GetExperience() ([]models.ExperienceRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.experience == nil || time.Now().After(c.experienceExp) {
		return nil, false
	}
	return slices.Clone(c.experience), true
}

func (c *Cache) SetExperience(experience []models.ExperienceRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.experience = append(make([]models.ExperienceRecord, 0, len(experience)), experience...)
	c.experienceExp = time.Now().Add(c.ttl)
}

func (c *Cache) InvalidateProfile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = nil
}

func (c *Cache) InvalidateProjects() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = nil
}

func (c *Cache) InvalidateExperience() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.experience = nil
}
