package api

import (
	"net/http"
	"time"

	"github.com/aiclub/website-backend/database"
	"github.com/aiclub/website-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type rootHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newRootHandler(database database.Database) rootHandler {
	logger := log.With().Str("handlerName", "rootHandler").Logger()

	return rootHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
	}
}

// apiRoot lists the collection endpoints
// @Summary API root
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/ [get]
func (h rootHandler) apiRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := baseURL(r) + "/api/"
		h.responder.WriteJSON(w, map[string]string{
			"members":  base + "members/",
			"blogs":    base + "blogs/",
			"projects": base + "projects/",
		})
	}
}

// healthz reports whether the database answers
// @Summary Liveness check
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Router /healthz [get]
func (h rootHandler) healthz(startupTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.database.Ping(r.Context()); err != nil {
			apiErr := errs.NewApiErr(http.StatusServiceUnavailable, "database unavailable")
			apiErr.Cause = err
			h.responder.WriteError(w, apiErr)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status": "ok",
			"uptime": time.Since(startupTime).Round(time.Second).String(),
		})
	}
}
