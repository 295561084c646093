package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrInvalidPage = errors.New("invalid page")
)

// NewInvalidPageError is returned for page numbers that are not integers or fall outside the result set.
func NewInvalidPageError(page string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        errors.New("Invalid page."),
		Details:    fmt.Sprintf("page %q does not exist", page),
		Field:      "page",
		kind:       ErrInvalidPage,
	}
}
