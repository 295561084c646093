package api

import (
	"net/http"

	"github.com/aiclub/website-backend/database"
	"github.com/aiclub/website-backend/filters"
	"github.com/aiclub/website-backend/models"
	"github.com/aiclub/website-backend/serializers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	serializer  *serializers.Serializer
}

func newProjectHandler(projectRepo *database.ProjectRepo, serializer *serializers.Serializer) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		serializer:  serializer,
	}
}

// listProjects returns one page of projects
// @Summary List projects
// @Description Lists projects, latest start date first
// @Tags Projects
// @Produce json
// @Param status query string false "ongoing, completed or planned"
// @Param technology query string false "Case-insensitive substring of technologies_used"
// @Param search query string false "Terms matched against name, descriptions and technologies"
// @Param ordering query string false "name, start_date, end_date or created_at, prefixed with - for descending"
// @Param page query int false "1-based page number"
// @Success 200 {object} PaginatedResponse[serializers.Project]
// @Failure 404 {object} ErrorResponse "Invalid page."
// @Router /api/projects/ [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		page, err := filters.ParsePage(query)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := h.projectRepo.List(r.Context(), filters.ParseProjectParams(query), page)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, paginated(r, result, h.serializer.Projects(r.Context(), result.Items)))
	}
}

// getProject returns a single project
// @Summary Get a project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} serializers.Project
// @Failure 404 {object} ErrorResponse "project not found"
// @Router /api/projects/{projectID}/ [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "projectID", "project")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.serializer.Project(r.Context(), project))
	}
}

// listByStatus returns every project with the given status, unpaginated
// @Summary List ongoing or completed projects
// @Tags Projects
// @Produce json
// @Success 200 {array} serializers.Project
// @Router /api/projects/ongoing/ [get]
// @Router /api/projects/completed/ [get]
func (h projectHandler) listByStatus(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.ListByStatus(r.Context(), status)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.serializer.Projects(r.Context(), projects))
	}
}

func (h projectHandler) listOngoing() http.HandlerFunc {
	return h.listByStatus(models.StatusOngoing)
}

func (h projectHandler) listCompleted() http.HandlerFunc {
	return h.listByStatus(models.StatusCompleted)
}
