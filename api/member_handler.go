package api

import (
	"net/http"

	"github.com/aiclub/website-backend/database"
	"github.com/aiclub/website-backend/filters"
	"github.com/aiclub/website-backend/serializers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type memberHandler struct {
	responder  Responder
	logger     zerolog.Logger
	memberRepo *database.MemberRepo
	serializer *serializers.Serializer
}

func newMemberHandler(memberRepo *database.MemberRepo, serializer *serializers.Serializer) memberHandler {
	logger := log.With().Str("handlerName", "memberHandler").Logger()

	return memberHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		memberRepo: memberRepo,
		serializer: serializer,
	}
}

// listMembers returns one page of members
// @Summary List members
// @Description Lists members, POR holders first then by name. Filters: active, por_holders, designation, batch. Also accepts search, ordering and page.
// @Tags Members
// @Produce json
// @Param active query string false "true for active members, any other value for inactive ones"
// @Param por_holders query string false "true for POR holders, any other value for the rest"
// @Param designation query string false "Case-insensitive substring of the designation"
// @Param batch query string false "Exact batch"
// @Param search query string false "Terms matched against name, designation, batch and bio"
// @Param ordering query string false "name, batch or joined_date, prefixed with - for descending"
// @Param page query int false "1-based page number"
// @Success 200 {object} PaginatedResponse[serializers.Member]
// @Failure 404 {object} ErrorResponse "Invalid page."
// @Router /api/members/ [get]
func (h memberHandler) listMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		page, err := filters.ParsePage(query)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := h.memberRepo.List(r.Context(), filters.ParseMemberParams(query), page)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, paginated(r, result, h.serializer.Members(r.Context(), result.Items)))
	}
}

// getMember returns a single member
// @Summary Get a member
// @Tags Members
// @Produce json
// @Param memberID path int true "Member ID"
// @Success 200 {object} serializers.Member
// @Failure 404 {object} ErrorResponse "member not found"
// @Router /api/members/{memberID}/ [get]
func (h memberHandler) getMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "memberID", "member")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		member, err := h.memberRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.serializer.Member(r.Context(), member))
	}
}

// listPorHolders returns every POR holder, unpaginated
// @Summary List POR holders
// @Tags Members
// @Produce json
// @Success 200 {array} serializers.Member
// @Router /api/members/por_holders/ [get]
func (h memberHandler) listPorHolders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := h.memberRepo.ListPorHolders(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.serializer.Members(r.Context(), members))
	}
}

// listActive returns every active member, unpaginated
// @Summary List active members
// @Tags Members
// @Produce json
// @Success 200 {array} serializers.Member
// @Router /api/members/active/ [get]
func (h memberHandler) listActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := h.memberRepo.ListActive(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.serializer.Members(r.Context(), members))
	}
}
