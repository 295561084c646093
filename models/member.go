package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Member represents a club team member. Every profile column is optional.
type Member struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         *string         `json:"name" gorm:"size:250"`
	Email        *string         `json:"email" gorm:"size:254"`
	Bio          *string         `json:"bio" gorm:"type:text"`
	PhotoLink    *string         `json:"photo_link" gorm:"size:200"`
	PhotoFile    *string         `json:"photo_file" gorm:"size:100"`
	Batch        *string         `json:"batch" gorm:"size:150;index"`
	Designation  *string         `json:"designation" gorm:"size:250"`
	IsPorHolder  bool            `json:"is_por_holder" gorm:"not null;default:false;index"`
	IsActive     *bool           `json:"is_active" gorm:"default:true;index"`
	GithubLink   *string         `json:"github_link" gorm:"size:200"`
	LinkedinLink *string         `json:"linkedin_link" gorm:"size:200"`
	JoinedDate   *datatypes.Date `json:"joined_date"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeDelete detaches the member from every blog post it co-authored. The posts
// themselves are kept.
func (m *Member) BeforeDelete(tx *gorm.DB) error {
	if m.ID == 0 {
		return nil
	}
	return tx.Exec("DELETE FROM blog_post_author_members WHERE member_id = ?", m.ID).Error
}

func (m Member) String() string {
	name, designation := "Unnamed", "Member"
	if m.Name != nil && *m.Name != "" {
		name = *m.Name
	}
	if m.Designation != nil && *m.Designation != "" {
		designation = *m.Designation
	}
	return name + " - " + designation
}
