package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusPlanning     ProjectStatus = "planning"
	ProjectStatusConstruction ProjectStatus = "construction"
	ProjectStatusCompleted    ProjectStatus = "completed"
)

type Project struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Location    string `gorm:"type:text;not null" json:"location"`

	Status ProjectStatus `gorm:"size:20;index" json:"status"`

	// Progress is stored exactly as submitted, including values outside
	// 0-100.
	Progress int `json:"progress"`

	AvailableUnits     *int   `json:"availableUnits,omitempty"`
	TotalUnits         *int   `json:"totalUnits,omitempty"`
	ExpectedCompletion string `gorm:"size:50" json:"expectedCompletion,omitempty"`

	Features datatypes.JSONSlice[string] `json:"features"`
	Images   datatypes.JSONSlice[string] `json:"images"`

	Featured bool `json:"featured"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = ProjectStatusPlanning
	}
	return nil
}
