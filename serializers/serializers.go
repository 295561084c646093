// Package serializers builds the JSON representations returned by the API. Each
// representation lists its fields explicitly; adding a column to a model does not
// expose it until it is added here.
package serializers

import (
	"context"
	"time"

	"github.com/aiclub/website-backend/media"
	"github.com/aiclub/website-backend/models"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

type Member struct {
	ID           uint        `json:"id"`
	Name         null.String `json:"name"`
	Email        null.String `json:"email"`
	Bio          null.String `json:"bio"`
	PhotoLink    null.String `json:"photo_link"`
	PhotoFile    null.String `json:"photo_file"`
	Batch        null.String `json:"batch"`
	Designation  null.String `json:"designation"`
	IsPorHolder  bool        `json:"is_por_holder"`
	IsActive     null.Bool   `json:"is_active"`
	GithubLink   null.String `json:"github_link"`
	LinkedinLink null.String `json:"linkedin_link"`
	JoinedDate   null.String `json:"joined_date"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// MemberBasic is the reduced member shape nested inside blog posts.
type MemberBasic struct {
	ID           uint        `json:"id"`
	Name         null.String `json:"name"`
	Designation  null.String `json:"designation"`
	PhotoLink    null.String `json:"photo_link"`
	PhotoFile    null.String `json:"photo_file"`
	GithubLink   null.String `json:"github_link"`
	LinkedinLink null.String `json:"linkedin_link"`
}

type BlogPost struct {
	ID                   uint          `json:"id"`
	Title                null.String   `json:"title"`
	Slug                 null.String   `json:"slug"`
	Author               null.String   `json:"author"`
	AuthorMembers        []uint        `json:"author_members"`
	AuthorMembersDetails []MemberBasic `json:"author_members_details"`
	DatePublished        null.Time     `json:"date_published"`
	DateCreated          time.Time     `json:"date_created"`
	DateModified         time.Time     `json:"date_modified"`
	BlogContent          null.String   `json:"blog_content"`
	SmallDescription     null.String   `json:"small_description"`
	BlogImageLink        null.String   `json:"blog_image_link"`
	BlogImageFile        null.String   `json:"blog_image_file"`
	Thumbnail            null.String   `json:"thumbnail"`
	LinkedinLink         null.String   `json:"linkedin_link"`
	GithubLink           null.String   `json:"github_link"`
	MediumLink           null.String   `json:"medium_link"`
	OtherLinks           null.String   `json:"other_links"`
	ViewsCount           null.Int      `json:"views_count"`
	IsPublished          null.Bool     `json:"is_published"`
}

type Project struct {
	ID                   uint        `json:"id"`
	Name                 null.String `json:"name"`
	Slug                 null.String `json:"slug"`
	ShortDescription     null.String `json:"short_description"`
	Description          null.String `json:"description"`
	Tagline              null.String `json:"tagline"`
	TechnologiesUsed     null.String `json:"technologies_used"`
	TechStack            null.String `json:"tech_stack"`
	HeroSectionImageLink null.String `json:"hero_section_image_link"`
	HeroSectionImageFile null.String `json:"hero_section_image_file"`
	Image1Link           null.String `json:"image_1_link"`
	WebsiteLink          null.String `json:"website_link"`
	GithubLink           null.String `json:"github_link"`
	DemoLink             null.String `json:"demo_link"`
	DocumentationLink    null.String `json:"documentation_link"`
	VideoLink            null.String `json:"video_link"`
	StartDate            null.String `json:"start_date"`
	EndDate              null.String `json:"end_date"`
	Status               null.String `json:"status"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// Serializer converts models to representations. Stored file paths are turned
// into URLs by the media resolver.
type Serializer struct {
	media media.Resolver
}

func New(resolver media.Resolver) *Serializer {
	if resolver == nil {
		resolver = media.NewLocalResolver("")
	}
	return &Serializer{media: resolver}
}

func (s *Serializer) Member(ctx context.Context, m *models.Member) Member {
	return Member{
		ID:           m.ID,
		Name:         null.StringFromPtr(m.Name),
		Email:        null.StringFromPtr(m.Email),
		Bio:          null.StringFromPtr(m.Bio),
		PhotoLink:    null.StringFromPtr(m.PhotoLink),
		PhotoFile:    s.file(ctx, m.PhotoFile),
		Batch:        null.StringFromPtr(m.Batch),
		Designation:  null.StringFromPtr(m.Designation),
		IsPorHolder:  m.IsPorHolder,
		IsActive:     null.BoolFromPtr(m.IsActive),
		GithubLink:   null.StringFromPtr(m.GithubLink),
		LinkedinLink: null.StringFromPtr(m.LinkedinLink),
		JoinedDate:   date(m.JoinedDate),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (s *Serializer) Members(ctx context.Context, members []models.Member) []Member {
	out := make([]Member, 0, len(members))
	for i := range members {
		out = append(out, s.Member(ctx, &members[i]))
	}
	return out
}

func (s *Serializer) MemberBasic(ctx context.Context, m *models.Member) MemberBasic {
	return MemberBasic{
		ID:           m.ID,
		Name:         null.StringFromPtr(m.Name),
		Designation:  null.StringFromPtr(m.Designation),
		PhotoLink:    null.StringFromPtr(m.PhotoLink),
		PhotoFile:    s.file(ctx, m.PhotoFile),
		GithubLink:   null.StringFromPtr(m.GithubLink),
		LinkedinLink: null.StringFromPtr(m.LinkedinLink),
	}
}

// BlogPost expects AuthorMembers to be preloaded; both author fields are built from it.
func (s *Serializer) BlogPost(ctx context.Context, p *models.BlogPost) BlogPost {
	details := make([]MemberBasic, 0, len(p.AuthorMembers))
	for i := range p.AuthorMembers {
		details = append(details, s.MemberBasic(ctx, &p.AuthorMembers[i]))
	}

	return BlogPost{
		ID:                   p.ID,
		Title:                null.StringFromPtr(p.Title),
		Slug:                 null.StringFromPtr(p.Slug),
		Author:               null.StringFromPtr(p.Author),
		AuthorMembers:        p.AuthorMemberIDs(),
		AuthorMembersDetails: details,
		DatePublished:        null.TimeFromPtr(p.DatePublished),
		DateCreated:          p.DateCreated,
		DateModified:         p.DateModified,
		BlogContent:          null.StringFromPtr(p.BlogContent),
		SmallDescription:     null.StringFromPtr(p.SmallDescription),
		BlogImageLink:        null.StringFromPtr(p.BlogImageLink),
		BlogImageFile:        s.file(ctx, p.BlogImageFile),
		Thumbnail:            s.file(ctx, p.Thumbnail),
		LinkedinLink:         null.StringFromPtr(p.LinkedinLink),
		GithubLink:           null.StringFromPtr(p.GithubLink),
		MediumLink:           null.StringFromPtr(p.MediumLink),
		OtherLinks:           null.StringFromPtr(p.OtherLinks),
		ViewsCount:           null.IntFromPtr(p.ViewsCount),
		IsPublished:          null.BoolFromPtr(p.IsPublished),
	}
}

func (s *Serializer) BlogPosts(ctx context.Context, posts []models.BlogPost) []BlogPost {
	out := make([]BlogPost, 0, len(posts))
	for i := range posts {
		out = append(out, s.BlogPost(ctx, &posts[i]))
	}
	return out
}

func (s *Serializer) Project(ctx context.Context, p *models.Project) Project {
	return Project{
		ID:                   p.ID,
		Name:                 null.StringFromPtr(p.Name),
		Slug:                 null.StringFromPtr(p.Slug),
		ShortDescription:     null.StringFromPtr(p.ShortDescription),
		Description:          null.StringFromPtr(p.Description),
		Tagline:              null.StringFromPtr(p.Tagline),
		TechnologiesUsed:     null.StringFromPtr(p.TechnologiesUsed),
		TechStack:            null.StringFromPtr(p.TechStack),
		HeroSectionImageLink: null.StringFromPtr(p.HeroSectionImageLink),
		HeroSectionImageFile: s.file(ctx, p.HeroSectionImageFile),
		Image1Link:           null.StringFromPtr(p.Image1Link),
		WebsiteLink:          null.StringFromPtr(p.WebsiteLink),
		GithubLink:           null.StringFromPtr(p.GithubLink),
		DemoLink:             null.StringFromPtr(p.DemoLink),
		DocumentationLink:    null.StringFromPtr(p.DocumentationLink),
		VideoLink:            null.StringFromPtr(p.VideoLink),
		StartDate:            date(p.StartDate),
		EndDate:              date(p.EndDate),
		Status:               null.StringFromPtr(p.Status),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (s *Serializer) Projects(ctx context.Context, projects []models.Project) []Project {
	out := make([]Project, 0, len(projects))
	for i := range projects {
		out = append(out, s.Project(ctx, &projects[i]))
	}
	return out
}

func (s *Serializer) file(ctx context.Context, path *string) null.String {
	if path == nil {
		return null.String{}
	}
	return s.media.URL(ctx, *path)
}

func date(d *datatypes.Date) null.String {
	if d == nil {
		return null.String{}
	}
	return null.StringFrom(time.Time(*d).Format(dateLayout))
}
