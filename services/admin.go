package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// Admin creates content records. A record is added to the mounted list only
// after the store confirms the insert; on failure the list is left alone.
type Admin struct {
	stores  Stores
	content *Content
	logger  zerolog.Logger
}

func NewAdmin(stores Stores, content *Content) *Admin {
	return &Admin{
		stores:  stores,
		content: content,
		logger:  log.With().Str("component", "admin").Logger(),
	}
}

func (a *Admin) CreateProject(ctx context.Context, draft models.Project) (*models.Project, error) {
	draft.ID = uuid.Nil
	draft.CreatedAt = time.Time{}
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return insertAndPrepend(ctx, a, a.stores.Projects, draft, func(s *Site) *Accessor[models.Project] {
		return s.Projects
	})
}

func (a *Admin) CreateSkill(ctx context.Context, draft models.Skill) (*models.Skill, error) {
	draft.ID = uuid.Nil
	draft.CreatedAt = time.Time{}
	if err := draft.Normalize(); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return insertAndPrepend(ctx, a, a.stores.Skills, draft, func(s *Site) *Accessor[models.Skill] {
		return s.Skills
	})
}

func (a *Admin) CreateExperience(ctx context.Context, draft models.Experience) (*models.Experience, error) {
	draft.ID = uuid.Nil
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	created, err := insertAndPrepend(ctx, a, a.stores.Experience, draft, func(s *Site) *Accessor[models.Experience] {
		return s.Experience
	})
	if err != nil {
		return nil, err
	}
	// Same shape as the record in a snapshot.
	presented := NormalizeExperience(*created)
	return &presented, nil
}

func insertAndPrepend[T any](ctx context.Context, a *Admin, store Store[T], record T, accessor func(*Site) *Accessor[T]) (*T, error) {
	if err := store.InsertOne(ctx, &record); err != nil {
		a.logger.Warn().Err(err).Msg("create failed")
		return nil, err
	}

	if site := a.content.Site(); site != nil {
		target := accessor(site)
		target.Prepend(record)
		a.logger.Info().Str("accessor", target.Name()).Msg("record created")
	}
	return &record, nil
}
