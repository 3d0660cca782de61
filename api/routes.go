package api

import (
	"github.com/go-chi/chi/v5"
)

func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.healthHandler.getHealth())

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/content", handlers.contentHandler.getContent())
		r.Get("/projects", handlers.contentHandler.getProjects())
		r.Get("/skills", handlers.contentHandler.getSkills())
		r.Get("/skills/grouped", handlers.contentHandler.getGroupedSkills())
		r.Get("/experience", handlers.contentHandler.getExperience())
		r.Get("/education", handlers.contentHandler.getEducation())

		r.Post("/contact", handlers.contactHandler.submitContact())

		// The admin surface trusts the caller.
		r.Route("/admin", func(r chi.Router) {
			r.Post("/projects", handlers.adminHandler.createProject())
			r.Post("/skills", handlers.adminHandler.createSkill())
			r.Post("/experience", handlers.adminHandler.createExperience())
			r.Post("/reload", handlers.adminHandler.reload())
		})
	})
}
