package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes registers the read-only content API. Paths are registered
// without a trailing slash; StripSlashes lets clients use either form.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/api", handlers.rootHandler.apiRoot())

	r.Route("/api/members", func(r chi.Router) {
		r.Get("/", handlers.memberHandler.listMembers())
		r.Get("/por_holders", handlers.memberHandler.listPorHolders())
		r.Get("/active", handlers.memberHandler.listActive())
		r.Get("/{memberID}", handlers.memberHandler.getMember())
	})

	r.Route("/api/blogs", func(r chi.Router) {
		r.Get("/", handlers.blogPostHandler.listBlogPosts())
		r.Get("/{blogPostID}", handlers.blogPostHandler.getBlogPost())
		r.Post("/{blogPostID}/increment_views", handlers.blogPostHandler.incrementViews())
	})

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", handlers.projectHandler.listProjects())
		r.Get("/ongoing", handlers.projectHandler.listOngoing())
		r.Get("/completed", handlers.projectHandler.listCompleted())
		r.Get("/{projectID}", handlers.projectHandler.getProject())
	})
}
