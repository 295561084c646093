package api

import (
	"net/http"
	"strconv"

	"github.com/aiclub/website-backend/database"
	"github.com/aiclub/website-backend/errs"
	"github.com/aiclub/website-backend/serializers"
	"github.com/go-chi/chi/v5"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, serializer *serializers.Serializer, metrics *Metrics) *routeHandlers {
	return &routeHandlers{
		memberHandler:   newMemberHandler(database.MemberRepo(), serializer),
		blogPostHandler: newBlogPostHandler(database.BlogPostRepo(), serializer, metrics),
		projectHandler:  newProjectHandler(database.ProjectRepo(), serializer),
		rootHandler:     newRootHandler(database),
	}
}

// idParam reads a numeric primary key from the URL. Anything that is not a
// positive integer cannot name a row, so it is reported as not found.
func idParam(r *http.Request, name, entity string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 0)
	if err != nil || id == 0 {
		return 0, errs.NewNotFound(entity)
	}
	return uint(id), nil
}
