package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// Experience is a job in the resume section. A nil EndDate means the
// position is current.
type Experience struct {
	ID          uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" gorm:"column:title;type:text;not null"`
	Company     string    `json:"company" gorm:"column:company;type:text;not null"`
	StartDate   string    `json:"start_date" gorm:"column:start_date;type:date;not null"`
	EndDate     *string   `json:"end_date,omitempty" gorm:"column:end_date;type:date"`
	Description string    `json:"description" gorm:"column:description;type:text"`

	// Period is the display range. It is derived, never stored.
	Period string `json:"period,omitempty" gorm:"-"`
}

func (Experience) TableName() string {
	return "experience"
}

func (e *Experience) Normalize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Company = strings.TrimSpace(e.Company)
	e.StartDate = strings.TrimSpace(e.StartDate)
	e.Description = strings.TrimSpace(e.Description)
	e.EndDate = blankToNil(e.EndDate)
	e.Period = ""
}

func (e Experience) Validate() error {
	if e.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if e.Company == "" {
		return errs.NewMissingRequiredFieldError("company")
	}
	if e.StartDate == "" {
		return errs.NewMissingRequiredFieldError("start_date")
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
