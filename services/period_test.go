package services

import (
	"testing"

	"github.com/rpupo63/portfolio-site-backend/models"
)

func strPtr(s string) *string { return &s }

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   *string
		want  string
	}{
		{"open ended", "2022-01-01", nil, "2022 - Present"},
		{"closed", "2022-01-01", strPtr("2024-06-01"), "2022 - 2024"},
		{"blank end", "2022-01-01", strPtr(""), "2022 - Present"},
		{"timestamp", "2021-03-01T00:00:00Z", strPtr("2023-05-01T10:00:00+02:00"), "2021 - 2023"},
		{"year only", "2019", nil, "2019 - Present"},
		{"unparseable start", "sometime", nil, "NaN - Present"},
		{"unparseable end", "2020-01-01", strPtr("later"), "2020 - NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPeriod(tt.start, tt.end); got != tt.want {
				t.Errorf("FormatPeriod(%q, %v) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestNormalizeExperienceIsIdempotent(t *testing.T) {
	e := models.Experience{StartDate: "2022-01-01"}
	once := NormalizeExperience(e)
	if once.Period != "2022 - Present" {
		t.Fatalf("Period = %q", once.Period)
	}
	if twice := NormalizeExperience(once); twice.Period != once.Period {
		t.Errorf("second pass = %q, want %q", twice.Period, once.Period)
	}

	preset := models.Experience{StartDate: "2010-01-01", Period: "2022 - Present"}
	if got := NormalizeExperience(preset).Period; got != "2022 - Present" {
		t.Errorf("existing period overwritten: %q", got)
	}
}

func TestNormalizeEducation(t *testing.T) {
	e := models.Education{StartDate: "2023-09-01", GraduationDate: strPtr("2025-06-30")}
	if got := NormalizeEducation(e).Period; got != "2023 - 2025" {
		t.Errorf("Period = %q, want %q", got, "2023 - 2025")
	}
}
