package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusClosed    LeadStatus = "closed"
)

const DefaultLeadSource = "website"

// Lead is a contact-form submission. Leads are created through the public
// intake or by an admin, patched by status/assignment updates, and never
// deleted automatically. Duplicate submissions are kept as separate rows.
type Lead struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	Email     string `gorm:"size:100;not null" json:"email"`
	Phone     string `gorm:"size:30" json:"phone,omitempty"`

	PropertyInterest string `gorm:"type:text" json:"propertyInterest,omitempty"`
	Message          string `gorm:"type:text" json:"message,omitempty"`

	Source string     `gorm:"size:50" json:"source"`
	Status LeadStatus `gorm:"size:20;index" json:"status"`

	PropertyID string `gorm:"size:36" json:"propertyId,omitempty"`
	AssignedTo string `gorm:"size:36" json:"assignedTo,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
	if l.Source == "" {
		l.Source = DefaultLeadSource
	}
	return nil
}
