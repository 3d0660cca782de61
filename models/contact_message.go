package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// ContactMessage is written by the contact form and never read back.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" gorm:"column:name;type:text;not null"`
	Email     string    `json:"email" gorm:"column:email;type:text;not null"`
	Subject   string    `json:"subject" gorm:"column:subject;type:text;not null"`
	Message   string    `json:"message" gorm:"column:message;type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (m *ContactMessage) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)
}

func (m ContactMessage) Validate() error {
	switch {
	case m.Name == "":
		return errs.NewMissingRequiredFieldError("name")
	case m.Email == "":
		return errs.NewMissingRequiredFieldError("email")
	case !strings.Contains(m.Email, "@"):
		return errs.NewInvalidFieldError("email", "must contain @")
	case m.Subject == "":
		return errs.NewMissingRequiredFieldError("subject")
	case m.Message == "":
		return errs.NewMissingRequiredFieldError("message")
	}
	return nil
}
