package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	memberHandler   memberHandler
	blogPostHandler blogPostHandler
	projectHandler  projectHandler
	rootHandler     rootHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid page."`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"page"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// PaginatedResponse is the envelope of every list endpoint.
// @Description One page of results with links to its neighbours
type PaginatedResponse[T any] struct {
	Count    int64   `json:"count" example:"23"`
	Next     *string `json:"next" example:"http://localhost:8000/api/members/?page=3"`
	Previous *string `json:"previous" example:"http://localhost:8000/api/members/"`
	Results  []T     `json:"results"`
}

// StatusResponse is returned by actions that only acknowledge success.
type StatusResponse struct {
	Status string `json:"status" example:"view count incremented"`
}
