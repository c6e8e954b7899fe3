package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
	PropertyStatusPending   PropertyStatus = "pending"
)

const DefaultCurrency = "ETB"

// Property is a public catalog listing. Field names in JSON are the
// boundary contract the frontends depend on, id included.
type Property struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	PropertyType string         `gorm:"size:20;index" json:"propertyType"`
	ListingType  string         `gorm:"size:10;index" json:"listingType"`
	Status       PropertyStatus `gorm:"size:20;index" json:"status"`

	Price       float64  `gorm:"not null" json:"price"`
	PricePerSqm *float64 `json:"pricePerSqm,omitempty"`
	Currency    string   `gorm:"size:10" json:"currency"`

	Location string `gorm:"type:text;not null" json:"location"`
	Address  string `gorm:"type:text" json:"address,omitempty"`

	Bedrooms  *int     `json:"bedrooms,omitempty"`
	Bathrooms *int     `json:"bathrooms,omitempty"`
	Area      *float64 `json:"area,omitempty"`

	Features datatypes.JSONSlice[string] `json:"features"`
	Images   datatypes.JSONSlice[string] `json:"images"`

	Featured bool   `gorm:"index" json:"featured"`
	AgentID  string `gorm:"size:36" json:"agentId,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = PropertyStatusAvailable
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	return nil
}

// PrimaryImage is the first image in the ordered list.
func (p *Property) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
