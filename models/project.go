package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// Project is a portfolio entry shown in the projects section.
type Project struct {
	ID          uuid.UUID                   `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string                      `json:"title" gorm:"column:title;type:text;not null"`
	Description string                      `json:"description" gorm:"column:description;type:text;not null"`
	ImageURL    string                      `json:"image_url" gorm:"column:image_url;type:text"`
	GithubURL   string                      `json:"github_url" gorm:"column:github_url;type:text"`
	LiveURL     string                      `json:"live_url" gorm:"column:live_url;type:text"`
	TechStack   datatypes.JSONSlice[string] `json:"tech_stack" gorm:"column:tech_stack;type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time                   `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (Project) TableName() string {
	return "projects"
}

// Normalize trims the text fields and drops blank tech stack entries.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.GithubURL = strings.TrimSpace(p.GithubURL)
	p.LiveURL = strings.TrimSpace(p.LiveURL)

	techStack := make(datatypes.JSONSlice[string], 0, len(p.TechStack))
	for _, tech := range p.TechStack {
		if tech = strings.TrimSpace(tech); tech != "" {
			techStack = append(techStack, tech)
		}
	}
	p.TechStack = techStack
}

func (p Project) Validate() error {
	if p.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if p.Description == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	return nil
}
