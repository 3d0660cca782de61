package models

import (
	"errors"
	"reflect"
	"testing"

	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

func TestProjectNormalizeDropsBlankTechStack(t *testing.T) {
	p := Project{
		Title:       "  Portfolio  ",
		Description: "Site",
		TechStack:   datatypes.JSONSlice[string]{"React", "", "  ", " Node "},
	}
	p.Normalize()

	if p.Title != "Portfolio" {
		t.Errorf("Title = %q, want Portfolio", p.Title)
	}
	want := []string{"React", "Node"}
	if got := []string(p.TechStack); !reflect.DeepEqual(got, want) {
		t.Errorf("TechStack = %v, want %v", got, want)
	}
}

func TestProjectNormalizeNilTechStack(t *testing.T) {
	p := Project{Title: "x", Description: "y"}
	p.Normalize()
	if p.TechStack == nil || len(p.TechStack) != 0 {
		t.Errorf("TechStack = %#v, want empty non-nil slice", p.TechStack)
	}
}

func TestProjectValidate(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		field   string
	}{
		{"valid", Project{Title: "A", Description: "B"}, ""},
		{"missing title", Project{Description: "B"}, "title"},
		{"missing description", Project{Title: "A"}, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errs.IsMissingRequiredFieldError(err) {
				t.Fatalf("Validate() = %v, want missing field error", err)
			}
			var apiErr *errs.ApiErr
			if !errors.As(err, &apiErr) || apiErr.Field != tt.field {
				t.Errorf("Validate() = %v, want field %q", err, tt.field)
			}
		})
	}
}

func TestParseSkillCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    SkillCategory
		wantErr bool
	}{
		{"Frontend", SkillCategoryFrontend, false},
		{" backend ", SkillCategoryBackend, false},
		{"tools & others", SkillCategoryTools, false},
		{"Databases", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSkillCategory(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSkillCategory(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSkillCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if tt.wantErr && !errs.IsInvalidFieldError(err) {
			t.Errorf("ParseSkillCategory(%q) err = %v, want invalid field", tt.in, err)
		}
	}
}

func TestSkillNormalizeAndValidate(t *testing.T) {
	s := Skill{Name: " Go ", Category: "backend"}
	if err := s.Normalize(); err != nil {
		t.Fatalf("Normalize() = %v", err)
	}
	if s.Name != "Go" || s.Category != SkillCategoryBackend {
		t.Errorf("got %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	bad := Skill{Name: "Go", Category: "Cooking"}
	if err := bad.Normalize(); !errs.IsValidationError(err) {
		t.Errorf("Normalize() = %v, want validation error", err)
	}

	missing := Skill{Name: "Go"}
	if err := missing.Normalize(); err != nil {
		t.Fatalf("Normalize() = %v", err)
	}
	if err := missing.Validate(); !errs.IsMissingRequiredFieldError(err) {
		t.Errorf("Validate() = %v, want missing category", err)
	}
}

func TestExperienceNormalizeBlankEndDate(t *testing.T) {
	blank := "  "
	e := Experience{Title: "Dev", Company: "Acme", StartDate: "2022-01-01", EndDate: &blank, Period: "stale"}
	e.Normalize()

	if e.EndDate != nil {
		t.Errorf("EndDate = %q, want nil", *e.EndDate)
	}
	if e.Period != "" {
		t.Errorf("Period = %q, want cleared", e.Period)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	if err := (Experience{Title: "Dev", Company: "Acme"}).Validate(); !errs.IsMissingRequiredFieldError(err) {
		t.Errorf("Validate() = %v, want missing start_date", err)
	}
}

func TestContactMessageValidate(t *testing.T) {
	valid := ContactMessage{Name: "A", Email: "a@x.com", Subject: "Hi", Message: "Test"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	noAt := valid
	noAt.Email = "ax.com"
	if err := noAt.Validate(); !errs.IsInvalidFieldError(err) {
		t.Errorf("Validate() = %v, want invalid email", err)
	}

	noMessage := valid
	noMessage.Message = ""
	if err := noMessage.Validate(); !errs.IsMissingRequiredFieldError(err) {
		t.Errorf("Validate() = %v, want missing message", err)
	}
}

func TestModelFieldsSkipDerivedPeriod(t *testing.T) {
	fields := getModelFields(Experience{})
	want := []string{"id", "title", "company", "start_date", "end_date", "description"}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("getModelFields = %v, want %v", fields, want)
	}
}

func TestFindColumnMismatches(t *testing.T) {
	got := findColumnMismatches(
		[]string{"id", "title", "location", "created_at"},
		getModelFields(Project{}),
	)
	want := []string{"location"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findColumnMismatches = %v, want %v", got, want)
	}
}

func TestTableModelsCoverAll(t *testing.T) {
	if len(tableModels) != len(All()) {
		t.Errorf("tableModels has %d tables, All() has %d models", len(tableModels), len(All()))
	}
	for _, name := range []string{"projects", "skills", "experience", "education", "contact_messages"} {
		if _, ok := tableModels[name]; !ok {
			t.Errorf("missing table %q", name)
		}
	}
}
