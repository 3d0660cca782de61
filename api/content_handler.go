package api

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type contentHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.Content
}

func newContentHandler(content *services.Content) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

var errNotMounted = errs.NewApiErr(http.StatusServiceUnavailable, "content is not mounted")

// wantsWait reports whether the caller asked to block until the fetch
// resolves instead of seeing the loading state.
func wantsWait(r *http.Request) bool {
	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	return wait
}

// getContent returns every section's snapshot
// @Summary Get all content
// @Tags Content
// @Produce json
// @Param wait query bool false "Block until every section has resolved"
// @Success 200 {object} services.SiteSnapshot
// @Failure 503 {object} ErrorResponse "Content is not mounted"
// @Router /content [get]
func (h contentHandler) getContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		site := h.content.Site()
		if site == nil {
			h.responder.WriteError(w, errNotMounted)
			return
		}

		if wantsWait(r) {
			if err := site.WaitSettled(r.Context()); err != nil {
				h.logger.Debug().Err(err).Msg("stopped waiting for content")
			}
		}
		h.responder.WriteJSON(w, site.Snapshot())
	}
}

// @Summary Get projects
// @Tags Content
// @Produce json
// @Param wait query bool false "Block until the section has resolved"
// @Success 200 {object} services.Snapshot[models.Project]
// @Router /projects [get]
func (h contentHandler) getProjects() http.HandlerFunc {
	return snapshotHandler(h, func(s *services.Site) *services.Accessor[models.Project] { return s.Projects })
}

// @Summary Get skills
// @Tags Content
// @Produce json
// @Router /skills [get]
func (h contentHandler) getSkills() http.HandlerFunc {
	return snapshotHandler(h, func(s *services.Site) *services.Accessor[models.Skill] { return s.Skills })
}

// @Summary Get experience
// @Tags Content
// @Produce json
// @Router /experience [get]
func (h contentHandler) getExperience() http.HandlerFunc {
	return snapshotHandler(h, func(s *services.Site) *services.Accessor[models.Experience] { return s.Experience })
}

// @Summary Get education
// @Tags Content
// @Produce json
// @Router /education [get]
func (h contentHandler) getEducation() http.HandlerFunc {
	return snapshotHandler(h, func(s *services.Site) *services.Accessor[models.Education] { return s.Education })
}

// getGroupedSkills returns skills bucketed by category in display order
// @Summary Get skills grouped by category
// @Tags Content
// @Produce json
// @Success 200 {object} GroupedSkillsResponse
// @Router /skills/grouped [get]
func (h contentHandler) getGroupedSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		site := h.content.Site()
		if site == nil {
			h.responder.WriteError(w, errNotMounted)
			return
		}

		waitFor(r, site.Skills.Done())
		snapshot := site.Skills.Snapshot()
		h.responder.WriteJSON(w, GroupedSkillsResponse{
			Data:    services.GroupSkills(snapshot.Data),
			Loading: snapshot.Loading,
			Error:   snapshot.Error,
		})
	}
}

func snapshotHandler[T any](h contentHandler, accessor func(*services.Site) *services.Accessor[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		site := h.content.Site()
		if site == nil {
			h.responder.WriteError(w, errNotMounted)
			return
		}

		a := accessor(site)
		waitFor(r, a.Done())
		h.responder.WriteJSON(w, a.Snapshot())
	}
}

func waitFor(r *http.Request, done <-chan struct{}) {
	if !wantsWait(r) {
		return
	}
	select {
	case <-done:
	case <-r.Context().Done():
	}
}
