package filters

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/aiclub/website-backend/errs"
	"gorm.io/gorm"
)

const (
	PageSize  = 10
	PageParam = "page"
)

// Page is a requested page of a list. Number is 1-based. A request for the
// "last" page is resolved once the total count is known.
type Page struct {
	Number int
	Size   int
	raw    string
	last   bool
}

// ParsePage reads the page parameter. An absent or empty value selects page 1.
func ParsePage(q url.Values) (Page, error) {
	raw := strings.TrimSpace(q.Get(PageParam))
	page := Page{Number: 1, Size: PageSize, raw: raw}
	if raw == "" {
		return page, nil
	}
	if raw == "last" {
		page.last = true
		return page, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return Page{}, errs.NewInvalidPageError(raw)
	}
	page.Number = n
	return page, nil
}

// NumPages is the number of pages needed for count items. An empty list still
// has one (empty) page.
func (p Page) NumPages(count int64) int {
	if count <= 0 {
		return 1
	}
	return int((count + int64(p.Size) - 1) / int64(p.Size))
}

// Resolve checks the page against count and resolves "last".
func (p Page) Resolve(count int64) (Page, error) {
	pages := p.NumPages(count)
	if p.last {
		p.Number = pages
		p.last = false
	}
	if p.Number < 1 || p.Number > pages {
		return Page{}, errs.NewInvalidPageError(p.raw)
	}
	return p, nil
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) HasNext(count int64) bool {
	return p.Number < p.NumPages(count)
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// Scope limits a query to the rows of the page.
func (p Page) Scope() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Size)
	}
}
