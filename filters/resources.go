package filters

import (
	"net/url"
)

var (
	MemberOrdering = Ordering{
		Allowed: []string{"name", "batch", "joined_date"},
		Default: []string{"-is_por_holder", "name"},
	}
	BlogPostOrdering = Ordering{
		Allowed: []string{"date_published", "date_created", "views_count"},
		Default: []string{"-date_published"},
	}
	ProjectOrdering = Ordering{
		Allowed: []string{"name", "start_date", "end_date", "created_at"},
		Default: []string{"-start_date"},
	}

	MemberSearchFields   = []string{"name", "designation", "batch", "bio"}
	BlogPostSearchFields = []string{"title", "author", "blog_content", "small_description"}
	ProjectSearchFields  = []string{"name", "description", "short_description", "technologies_used"}
)

// MemberParams holds the accepted query parameters of the member list.
type MemberParams struct {
	Active      *bool
	PorHolders  *bool
	Designation *string
	Batch       *string
	Search      string
	Ordering    string
}

func ParseMemberParams(q url.Values) MemberParams {
	return MemberParams{
		Active:      OptionalBool(q, "active"),
		PorHolders:  OptionalBool(q, "por_holders"),
		Designation: OptionalString(q, "designation"),
		Batch:       OptionalString(q, "batch"),
		Search:      q.Get("search"),
		Ordering:    q.Get("ordering"),
	}
}

func (p MemberParams) Scopes() []Scope {
	var scopes []Scope
	if p.Active != nil {
		scopes = append(scopes, Equals("is_active", *p.Active))
	}
	if p.PorHolders != nil {
		scopes = append(scopes, Equals("is_por_holder", *p.PorHolders))
	}
	if p.Designation != nil {
		scopes = append(scopes, Contains("designation", *p.Designation))
	}
	if p.Batch != nil {
		scopes = append(scopes, Equals("batch", *p.Batch))
	}
	return append(scopes, Search(p.Search, MemberSearchFields))
}

// BlogPostParams holds the accepted query parameters of the blog post list.
type BlogPostParams struct {
	Published *bool
	Author    *string
	Search    string
	Ordering  string
}

func ParseBlogPostParams(q url.Values) BlogPostParams {
	return BlogPostParams{
		Published: OptionalBool(q, "published"),
		Author:    OptionalString(q, "author"),
		Search:    q.Get("search"),
		Ordering:  q.Get("ordering"),
	}
}

func (p BlogPostParams) Scopes() []Scope {
	var scopes []Scope
	if p.Published != nil {
		scopes = append(scopes, Equals("is_published", *p.Published))
	}
	if p.Author != nil {
		scopes = append(scopes, Contains("author", *p.Author))
	}
	return append(scopes, Search(p.Search, BlogPostSearchFields))
}

// ProjectParams holds the accepted query parameters of the project list.
type ProjectParams struct {
	Status     *string
	Technology *string
	Search     string
	Ordering   string
}

func ParseProjectParams(q url.Values) ProjectParams {
	return ProjectParams{
		Status:     OptionalString(q, "status"),
		Technology: OptionalString(q, "technology"),
		Search:     q.Get("search"),
		Ordering:   q.Get("ordering"),
	}
}

func (p ProjectParams) Scopes() []Scope {
	var scopes []Scope
	if p.Status != nil {
		scopes = append(scopes, Equals("status", *p.Status))
	}
	if p.Technology != nil {
		scopes = append(scopes, Contains("technologies_used", *p.Technology))
	}
	return append(scopes, Search(p.Search, ProjectSearchFields))
}
