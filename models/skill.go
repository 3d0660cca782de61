package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// SkillCategory is the closed set of groups the resume section renders.
type SkillCategory string

const (
	SkillCategoryFrontend SkillCategory = "Frontend"
	SkillCategoryBackend  SkillCategory = "Backend"
	SkillCategoryTools    SkillCategory = "Tools & Others"
)

// SkillCategories lists every category in display order.
var SkillCategories = []SkillCategory{
	SkillCategoryFrontend,
	SkillCategoryBackend,
	SkillCategoryTools,
}

// ParseSkillCategory matches a label case-insensitively against the known categories.
func ParseSkillCategory(label string) (SkillCategory, error) {
	label = strings.TrimSpace(label)
	for _, category := range SkillCategories {
		if strings.EqualFold(label, string(category)) {
			return category, nil
		}
	}
	return "", errs.NewInvalidFieldError("category", fmt.Sprintf("%q is not one of %v", label, SkillCategories))
}

type Skill struct {
	ID        uuid.UUID     `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string        `json:"name" gorm:"column:name;type:text;not null"`
	Category  SkillCategory `json:"category" gorm:"column:category;type:text;not null;index:idx_skills_category"`
	CreatedAt time.Time     `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (Skill) TableName() string {
	return "skills"
}

func (s *Skill) Normalize() error {
	s.Name = strings.TrimSpace(s.Name)
	if strings.TrimSpace(string(s.Category)) == "" {
		return nil
	}
	category, err := ParseSkillCategory(string(s.Category))
	if err != nil {
		return err
	}
	s.Category = category
	return nil
}

func (s Skill) Validate() error {
	if s.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if s.Category == "" {
		return errs.NewMissingRequiredFieldError("category")
	}
	if _, err := ParseSkillCategory(string(s.Category)); err != nil {
		return err
	}
	return nil
}
