package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConstructionUpdate is a progress note attached to a Project. ProjectID is
// informational; the store enforces no referential integrity.
type ConstructionUpdate struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProjectID string `gorm:"size:36;index" json:"projectId"`
	Title     string `gorm:"type:text;not null" json:"title"`
	Content   string `gorm:"type:text" json:"content,omitempty"`

	// Optional progress snapshot at the time of the update, not clamped.
	Progress *int `json:"progress,omitempty"`

	UpdateDate time.Time `gorm:"index" json:"updateDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ConstructionUpdate) TableName() string {
	return "construction_updates"
}

func (u *ConstructionUpdate) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.UpdateDate.IsZero() {
		u.UpdateDate = time.Now()
	}
	return nil
}
