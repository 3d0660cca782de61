package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

func TestPrintSite(t *testing.T) {
	color.NoColor = true

	failure := "permission denied for table experience"
	snap := services.SiteSnapshot{
		Projects: services.Snapshot[models.Project]{
			Data:   services.DefaultProjects()[:1],
			Status: services.StatusReady,
		},
		Skills: services.Snapshot[models.Skill]{
			Data: []models.Skill{
				{Name: "Go", Category: models.SkillCategoryBackend},
				{Name: "React", Category: models.SkillCategoryFrontend},
			},
			Status: services.StatusReady,
		},
		Experience: services.Snapshot[models.Experience]{
			Data:   []models.Experience{},
			Error:  &failure,
			Status: services.StatusFailed,
		},
		Education: services.Snapshot[models.Education]{
			Data:    []models.Education{},
			Loading: true,
			Status:  services.StatusLoading,
		},
	}

	var buf bytes.Buffer
	printSite(&buf, snap)
	out := buf.String()

	for _, want := range []string{
		"Projects\n  " + services.DefaultProjects()[0].Title,
		"  Frontend: React\n  Backend: Go\n",
		"  error: " + failure,
		"Education\n  loading...",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := setLogLevel("DEBUG"); err != nil {
		t.Fatalf("setLogLevel: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("level = %s, want debug", zerolog.GlobalLevel())
	}
	if err := setLogLevel(""); err != nil || zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("empty level: err=%v level=%s", err, zerolog.GlobalLevel())
	}
	if err := setLogLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"serve": false, "migrate": false, "generate": false, "columns": false, "content": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
