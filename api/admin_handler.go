package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/services"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	admin     *services.Admin
	content   *services.Content
}

func newAdminHandler(admin *services.Admin, content *services.Content) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		admin:     admin,
		content:   content,
	}
}

// createProject creates a project and prepends it to the mounted list
// @Summary Create project
// @Tags Admin
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.Project "Created project with store-assigned fields"
// @Failure 400 {object} ErrorResponse "Invalid project data"
// @Failure 502 {object} ErrorResponse "Store rejected the insert"
// @Router /admin/projects [post]
func (h adminHandler) createProject() http.HandlerFunc {
	return createHandler(h, "project", h.admin.CreateProject)
}

// @Summary Create skill
// @Tags Admin
// @Accept json
// @Produce json
// @Param skill body models.Skill true "Skill data"
// @Success 201 {object} models.Skill
// @Router /admin/skills [post]
func (h adminHandler) createSkill() http.HandlerFunc {
	return createHandler(h, "skill", h.admin.CreateSkill)
}

// @Summary Create experience
// @Tags Admin
// @Accept json
// @Produce json
// @Param experience body models.Experience true "Experience data"
// @Success 201 {object} models.Experience
// @Router /admin/experience [post]
func (h adminHandler) createExperience() http.HandlerFunc {
	return createHandler(h, "experience", h.admin.CreateExperience)
}

func createHandler[T any](h adminHandler, entity string, create func(context.Context, T) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft T
		if err := decodeJSON(w, r, entity, &draft); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := create(r.Context(), draft)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// reload mounts a fresh copy of every section
// @Summary Reload content
// @Tags Admin
// @Produce json
// @Param wait query bool false "Block until every section has resolved"
// @Success 202 {object} ReloadResponse
// @Success 200 {object} ReloadResponse "Settled content, with wait=true"
// @Router /admin/reload [post]
func (h adminHandler) reload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The mount outlives this request.
		site := h.content.Mount(context.WithoutCancel(r.Context()))
		h.logger.Info().Time("mountedAt", site.MountedAt).Msg("content reload requested")

		if !wantsWait(r) {
			h.responder.WriteJSONStatus(w, http.StatusAccepted, ReloadResponse{MountedAt: site.MountedAt})
			return
		}

		if err := site.WaitSettled(r.Context()); err != nil {
			h.logger.Debug().Err(err).Msg("stopped waiting for reload")
		}
		snapshot := site.Snapshot()
		h.responder.WriteJSON(w, ReloadResponse{MountedAt: site.MountedAt, Content: &snapshot})
	}
}
