package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost represents a published article. Author is free text and is kept
// independent of AuthorMembers; neither is derived from the other.
type BlogPost struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Title            *string    `json:"title" gorm:"size:300"`
	Slug             *string    `json:"slug" gorm:"size:350;uniqueIndex"`
	Author           *string    `json:"author" gorm:"size:300"`
	AuthorMembers    []Member   `json:"author_members" gorm:"many2many:blog_post_author_members;constraint:OnDelete:CASCADE"`
	DatePublished    *time.Time `json:"date_published" gorm:"index"`
	DateCreated      time.Time  `json:"date_created" gorm:"autoCreateTime"`
	DateModified     time.Time  `json:"date_modified" gorm:"autoUpdateTime"`
	BlogContent      *string    `json:"blog_content" gorm:"type:text"`
	SmallDescription *string    `json:"small_description" gorm:"type:text"`
	BlogImageLink    *string    `json:"blog_image_link" gorm:"size:200"`
	BlogImageFile    *string    `json:"blog_image_file" gorm:"size:100"`
	Thumbnail        *string    `json:"thumbnail" gorm:"size:100"`
	LinkedinLink     *string    `json:"linkedin_link" gorm:"size:200"`
	GithubLink       *string    `json:"github_link" gorm:"size:200"`
	MediumLink       *string    `json:"medium_link" gorm:"size:200"`
	OtherLinks       *string    `json:"other_links" gorm:"type:text"`
	ViewsCount       *int       `json:"views_count" gorm:"default:0"`
	IsPublished      *bool      `json:"is_published" gorm:"default:true;index"`
}

// BeforeCreate defaults the publication date to the creation time.
func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.DatePublished == nil {
		now := time.Now().UTC()
		p.DatePublished = &now
	}
	return nil
}

// BeforeSave derives the slug from the title when it has not been set yet.
func (p *BlogPost) BeforeSave(tx *gorm.DB) error {
	slug, err := ensureSlug(tx, &BlogPost{}, p.ID, p.Title, p.Slug, "blog-post")
	if err != nil {
		return err
	}
	p.Slug = slug
	return nil
}

// AuthorMemberIDs returns the ids of the associated members in load order.
func (p BlogPost) AuthorMemberIDs() []uint {
	ids := make([]uint, 0, len(p.AuthorMembers))
	for _, m := range p.AuthorMembers {
		ids = append(ids, m.ID)
	}
	return ids
}

func (p BlogPost) String() string {
	title, author := "Untitled", "Unknown"
	if p.Title != nil && *p.Title != "" {
		title = *p.Title
	}
	if p.Author != nil && *p.Author != "" {
		author = *p.Author
	}
	return title + " - " + author
}
