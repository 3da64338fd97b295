package models

import (
	"html/template"
	"time"
)

// ProjectRecord is one entry of the projects showcase, decoded from a JSON resource.
type ProjectRecord struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github"`
	Live         string   `json:"live"`
	Icon         string   `json:"icon"`
	Featured     bool     `json:"featured"`
	Date         string   `json:"date"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
}

func (p ProjectRecord) IsFeatured() bool { return p.Featured }

// ExperienceRecord is one entry of the experience timeline. Date holds a range
// such as "Jan 2022 - Present".
type ExperienceRecord struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Date           string   `json:"date"`
	Description    string   `json:"description"`
	Achievements   []string `json:"achievements"`
	Technologies   []string `json:"technologies"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"type"`
	Featured       bool     `json:"featured"`
	CompanyURL     string   `json:"companyUrl"`
	Logo           string   `json:"logo"`
}

func (e ExperienceRecord) IsFeatured() bool { return e.Featured }

type Profile struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Avatar      string `yaml:"avatar"`
	Email       string `yaml:"email"`
	Location    string `yaml:"location"`
}

type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
	Read      bool
}

type NavState struct {
	MenuOpen bool `json:"menu_open"`
	Scrolled bool `json:"scrolled"`
}

type Section struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type IndexPageData struct {
	Profile     Profile
	Sections    []Section
	Projects    template.HTML
	Experience  template.HTML
	LastUpdated string
}

type ProjectsPageData struct {
	Profile    Profile
	Sections   []Section
	Category   string
	Categories []string
	Projects   template.HTML
}

type AdminPageData struct {
	Profile  Profile
	Messages []ContactMessage
	Unread   int
	Message  string
	Error    string
}
