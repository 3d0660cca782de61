package models

import "github.com/google/uuid"

// Education follows the same open-ended range convention as Experience,
// with GraduationDate as the end field.
type Education struct {
	ID             uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Degree         string    `json:"degree" gorm:"column:degree;type:text;not null"`
	School         string    `json:"school" gorm:"column:school;type:text;not null"`
	StartDate      string    `json:"start_date" gorm:"column:start_date;type:date;not null"`
	GraduationDate *string   `json:"graduation_date,omitempty" gorm:"column:graduation_date;type:date"`
	Description    string    `json:"description" gorm:"column:description;type:text"`

	Period string `json:"period,omitempty" gorm:"-"`
}

func (Education) TableName() string {
	return "education"
}
