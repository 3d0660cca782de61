package api

import (
	"time"

	"github.com/rpupo63/portfolio-site-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	contentHandler contentHandler
	contactHandler contactHandler
	adminHandler   adminHandler
	healthHandler  healthHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		contentHandler: newContentHandler(deps.Content),
		contactHandler: newContactHandler(deps.ContactMessages, deps.Notifier),
		adminHandler:   newAdminHandler(deps.Admin, deps.Content),
		healthHandler:  newHealthHandler(deps.Content, startupTime),
	}
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// GroupedSkillsResponse is the skills section bucketed by category.
type GroupedSkillsResponse struct {
	Data    []services.SkillGroup `json:"data"`
	Loading bool                  `json:"loading"`
	Error   *string               `json:"error"`
}

// ReloadResponse reports a fresh content mount.
type ReloadResponse struct {
	MountedAt time.Time              `json:"mounted_at"`
	Content   *services.SiteSnapshot `json:"content,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string    `json:"status"`
	StartupTime time.Time `json:"startup_time"`
	Uptime      string    `json:"uptime"`
	Mounted     bool      `json:"mounted"`
}

