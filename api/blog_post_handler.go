package api

import (
	"net/http"

	"github.com/aiclub/website-backend/database"
	"github.com/aiclub/website-backend/filters"
	"github.com/aiclub/website-backend/serializers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
	serializer   *serializers.Serializer
	metrics      *Metrics
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo, serializer *serializers.Serializer, metrics *Metrics) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
		serializer:   serializer,
		metrics:      metrics,
	}
}

// listBlogPosts returns one page of blog posts with their author members
// @Summary List blog posts
// @Description Lists blog posts, most recently published first
// @Tags Blog Posts
// @Produce json
// @Param published query string false "true for published posts, any other value for unpublished ones"
// @Param author query string false "Case-insensitive substring of the free text author"
// @Param search query string false "Terms matched against title, author, content and description"
// @Param ordering query string false "date_published, date_created or views_count, prefixed with - for descending"
// @Param page query int false "1-based page number"
// @Success 200 {object} PaginatedResponse[serializers.BlogPost]
// @Failure 404 {object} ErrorResponse "Invalid page."
// @Router /api/blogs/ [get]
func (h blogPostHandler) listBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		page, err := filters.ParsePage(query)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := h.blogPostRepo.List(r.Context(), filters.ParseBlogPostParams(query), page)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, paginated(r, result, h.serializer.BlogPosts(r.Context(), result.Items)))
	}
}

// getBlogPost returns a single blog post
// @Summary Get a blog post
// @Tags Blog Posts
// @Produce json
// @Param blogPostID path int true "Blog post ID"
// @Success 200 {object} serializers.BlogPost
// @Failure 404 {object} ErrorResponse "blog post not found"
// @Router /api/blogs/{blogPostID}/ [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "blogPostID", "blog post")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogPost, err := h.blogPostRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.serializer.BlogPost(r.Context(), blogPost))
	}
}

// incrementViews adds one to the view counter of a blog post
// @Summary Increment blog post views
// @Description Atomically increments views_count; concurrent calls are all counted
// @Tags Blog Posts
// @Produce json
// @Param blogPostID path int true "Blog post ID"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse "blog post not found"
// @Router /api/blogs/{blogPostID}/increment_views/ [post]
func (h blogPostHandler) incrementViews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "blogPostID", "blog post")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogPostRepo.IncrementViews(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if h.metrics != nil {
			h.metrics.RecordViewIncrement()
		}

		h.logger.Debug().Uint("blogPostID", id).Msg("view count incremented")
		h.responder.WriteJSON(w, StatusResponse{Status: "view count incremented"})
	}
}
