package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/aiclub/website-backend/database"
	"github.com/aiclub/website-backend/filters"
)

// paginated wraps a page of results. The next and previous links repeat the
// request URL with only the page parameter changed; the link to the first page
// carries no page parameter at all.
func paginated[M, T any](r *http.Request, result database.ListResult[M], results []T) PaginatedResponse[T] {
	response := PaginatedResponse[T]{
		Count:   result.Count,
		Results: results,
	}
	if result.Page.HasNext(result.Count) {
		next := pageURL(r, result.Page.Number+1)
		response.Next = &next
	}
	if result.Page.HasPrevious() {
		previous := pageURL(r, result.Page.Number-1)
		response.Previous = &previous
	}
	return response
}

func pageURL(r *http.Request, number int) string {
	u := url.URL{
		Scheme: "http",
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	if base, err := url.Parse(baseURL(r)); err == nil {
		u.Scheme = base.Scheme
	}

	query := r.URL.Query()
	if number <= 1 {
		query.Del(filters.PageParam)
	} else {
		query.Set(filters.PageParam, strconv.Itoa(number))
	}
	u.RawQuery = query.Encode()
	return u.String()
}
