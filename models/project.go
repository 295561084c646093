package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusPlanned   = "planned"
)

// ProjectStatuses lists the accepted values of Project.Status.
var ProjectStatuses = []string{StatusOngoing, StatusCompleted, StatusPlanned}

// Project represents a club project. TechnologiesUsed is a comma separated list
// kept as plain text; EndDate is expected to be empty while a project is ongoing.
type Project struct {
	ID                   uint            `json:"id" gorm:"primaryKey"`
	Name                 *string         `json:"name" gorm:"size:250"`
	Slug                 *string         `json:"slug" gorm:"size:300;uniqueIndex"`
	ShortDescription     *string         `json:"short_description" gorm:"type:text"`
	Description          *string         `json:"description" gorm:"type:text"`
	Tagline              *string         `json:"tagline" gorm:"size:500"`
	TechnologiesUsed     *string         `json:"technologies_used" gorm:"size:500"`
	TechStack            *string         `json:"tech_stack" gorm:"type:text"`
	HeroSectionImageLink *string         `json:"hero_section_image_link" gorm:"size:200"`
	HeroSectionImageFile *string         `json:"hero_section_image_file" gorm:"size:100"`
	Image1Link           *string         `json:"image_1_link" gorm:"column:image_1_link;size:200"`
	WebsiteLink          *string         `json:"website_link" gorm:"size:200"`
	GithubLink           *string         `json:"github_link" gorm:"size:200"`
	DemoLink             *string         `json:"demo_link" gorm:"size:200"`
	DocumentationLink    *string         `json:"documentation_link" gorm:"size:200"`
	VideoLink            *string         `json:"video_link" gorm:"size:200"`
	StartDate            *datatypes.Date `json:"start_date" gorm:"index"`
	EndDate              *datatypes.Date `json:"end_date"`
	Status               *string         `json:"status" gorm:"size:50;default:ongoing;index"`
	CreatedAt            time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeSave derives the slug from the name when it has not been set yet.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	slug, err := ensureSlug(tx, &Project{}, p.ID, p.Name, p.Slug, "project")
	if err != nil {
		return err
	}
	p.Slug = slug
	return nil
}

func (p Project) String() string {
	name, status := "Unnamed Project", "Unknown"
	if p.Name != nil && *p.Name != "" {
		name = *p.Name
	}
	if p.Status != nil && *p.Status != "" {
		status = *p.Status
	}
	return name + " - " + status
}
