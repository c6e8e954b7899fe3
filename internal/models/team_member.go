package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMember struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string `gorm:"type:text;not null" json:"name"`
	Position string `gorm:"type:text;not null" json:"position"`
	Bio      string `gorm:"type:text" json:"bio,omitempty"`
	Photo    string `gorm:"type:text" json:"photo,omitempty"`

	// Contact fields are independently optional.
	Phone    string `gorm:"size:30" json:"phone,omitempty"`
	Whatsapp string `gorm:"size:30" json:"whatsapp,omitempty"`
	Email    string `gorm:"size:100" json:"email,omitempty"`

	// Active gates public visibility; DisplayOrder sorts the public list.
	Active       *bool `json:"active"`
	DisplayOrder int   `gorm:"index" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Active == nil {
		active := true
		m.Active = &active
	}
	return nil
}
