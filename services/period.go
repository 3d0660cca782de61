package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rpupo63/portfolio-site-backend/models"
)

const (
	presentLabel = "Present"
	// invalidYear is what an unparseable date renders as.
	invalidYear = "NaN"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01",
	"2006",
}

// FormatPeriod renders "<startYear> - <endYear>", with "Present" for a
// missing end date.
func FormatPeriod(start string, end *string) string {
	endLabel := presentLabel
	if end != nil && strings.TrimSpace(*end) != "" {
		endLabel = year(*end)
	}
	return fmt.Sprintf("%s - %s", year(start), endLabel)
}

func year(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return strconv.Itoa(t.Year())
		}
	}
	return invalidYear
}

// NormalizeExperience fills Period unless the record already carries one.
func NormalizeExperience(e models.Experience) models.Experience {
	if e.Period != "" {
		return e
	}
	e.Period = FormatPeriod(e.StartDate, e.EndDate)
	return e
}

func NormalizeEducation(e models.Education) models.Education {
	if e.Period != "" {
		return e
	}
	e.Period = FormatPeriod(e.StartDate, e.GraduationDate)
	return e
}
