package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// Read ordering per entity.
var (
	ProjectsOrder   = database.Desc("created_at")
	SkillsOrder     = database.Asc("category")
	ExperienceOrder = database.Desc("start_date")
	EducationOrder  = database.Desc("start_date")
)

// Stores groups the per-collection store clients.
type Stores struct {
	Projects        Store[models.Project]
	Skills          Store[models.Skill]
	Experience      Store[models.Experience]
	Education       Store[models.Education]
	ContactMessages Store[models.ContactMessage]
}

// Site is one mount of every content section. Each accessor resolves on its
// own; nothing waits for the others.
type Site struct {
	Projects   *Accessor[models.Project]
	Skills     *Accessor[models.Skill]
	Experience *Accessor[models.Experience]
	Education  *Accessor[models.Education]
	MountedAt  time.Time
}

func MountSite(ctx context.Context, stores Stores) *Site {
	return &Site{
		Projects: Mount(ctx, stores.Projects, AccessorConfig[models.Project]{
			Name:     "projects",
			Order:    ProjectsOrder,
			Fallback: DefaultProjects,
			Key:      projectKey,
		}),
		Skills: Mount(ctx, stores.Skills, AccessorConfig[models.Skill]{
			Name:     "skills",
			Order:    SkillsOrder,
			Fallback: DefaultSkills,
			Key:      skillKey,
		}),
		Experience: Mount(ctx, stores.Experience, AccessorConfig[models.Experience]{
			Name:     "experience",
			Order:    ExperienceOrder,
			Fallback: DefaultExperience,
			Key:      experienceKey,
			Present:  NormalizeExperience,
		}),
		Education: Mount(ctx, stores.Education, AccessorConfig[models.Education]{
			Name:     "education",
			Order:    EducationOrder,
			Fallback: DefaultEducation,
			Key:      educationKey,
			Present:  NormalizeEducation,
		}),
		MountedAt: time.Now(),
	}
}

func projectKey(p models.Project) string { return p.ID.String() }

func skillKey(s models.Skill) string { return s.ID.String() }

func experienceKey(e models.Experience) string { return e.ID.String() }

func educationKey(e models.Education) string { return e.ID.String() }

// Unmount cancels every in-flight fetch of this mount.
func (s *Site) Unmount() {
	s.Projects.Unmount()
	s.Skills.Unmount()
	s.Experience.Unmount()
	s.Education.Unmount()
}

// WaitSettled blocks until every accessor has resolved or ctx is done. It is
// for callers that want a finished page (the CLI, tests); accessors never
// wait on each other.
func (s *Site) WaitSettled(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, done := range []<-chan struct{}{
		s.Projects.Done(),
		s.Skills.Done(),
		s.Experience.Done(),
		s.Education.Done(),
	} {
		done := done
		g.Go(func() error {
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	return g.Wait()
}

// SiteSnapshot is the state of every section at one instant.
type SiteSnapshot struct {
	Projects   Snapshot[models.Project]    `json:"projects"`
	Skills     Snapshot[models.Skill]      `json:"skills"`
	Experience Snapshot[models.Experience] `json:"experience"`
	Education  Snapshot[models.Education]  `json:"education"`
	MountedAt  time.Time                   `json:"mounted_at"`
}

func (s *Site) Snapshot() SiteSnapshot {
	return SiteSnapshot{
		Projects:   s.Projects.Snapshot(),
		Skills:     s.Skills.Snapshot(),
		Experience: s.Experience.Snapshot(),
		Education:  s.Education.Snapshot(),
		MountedAt:  s.MountedAt,
	}
}

// SkillGroup is one category of the resume's skills column.
type SkillGroup struct {
	Category models.SkillCategory `json:"category"`
	Items    []string             `json:"items"`
}

// GroupSkills buckets skills by category in display order. Categories are
// matched case-insensitively; rows written around the admin flow with an
// unknown category are logged and left out. Empty categories are omitted.
func GroupSkills(skills []models.Skill) []SkillGroup {
	byCategory := make(map[models.SkillCategory][]string, len(models.SkillCategories))
	for _, skill := range skills {
		category, err := models.ParseSkillCategory(string(skill.Category))
		if err != nil {
			log.Warn().
				Str("skill", skill.Name).
				Str("category", string(skill.Category)).
				Msg("skipping skill with unknown category")
			continue
		}
		byCategory[category] = append(byCategory[category], skill.Name)
	}

	groups := make([]SkillGroup, 0, len(models.SkillCategories))
	for _, category := range models.SkillCategories {
		if items := byCategory[category]; len(items) > 0 {
			groups = append(groups, SkillGroup{Category: category, Items: items})
		}
	}
	return groups
}

// Content holds the currently mounted Site. Reloading mounts a fresh Site and
// unmounts the previous one.
type Content struct {
	stores Stores
	logger zerolog.Logger

	mu   sync.RWMutex
	site *Site
}

func NewContent(stores Stores) *Content {
	return &Content{
		stores: stores,
		logger: log.With().Str("component", "content").Logger(),
	}
}

// Mount mounts a new Site and makes it current.
func (c *Content) Mount(ctx context.Context) *Site {
	site := MountSite(ctx, c.stores)

	c.mu.Lock()
	previous := c.site
	c.site = site
	c.mu.Unlock()

	if previous != nil {
		previous.Unmount()
		c.logger.Info().Time("previousMountedAt", previous.MountedAt).Msg("content remounted")
	} else {
		c.logger.Info().Msg("content mounted")
	}
	return site
}

// Site returns the current mount, or nil before the first Mount.
func (c *Content) Site() *Site {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.site
}

// Close unmounts the current Site.
func (c *Content) Close() {
	c.mu.Lock()
	site := c.site
	c.site = nil
	c.mu.Unlock()

	if site != nil {
		site.Unmount()
	}
}
