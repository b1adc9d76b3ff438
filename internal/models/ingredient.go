package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ingredient struct {
	ID              uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Name            string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Category        string         `gorm:"size:50" json:"category"`
	Unit            string         `gorm:"size:20" json:"unit"`
	NutritionalInfo string         `gorm:"type:text" json:"nutritional_info"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// PantryItem is one stocked ingredient for a user. The recommendation
// logic only cares about the distinct ingredient ids, not quantities.
type PantryItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	IngredientID uuid.UUID  `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	PurchaseDate time.Time  `json:"purchase_date"`
}

func (PantryItem) TableName() string {
	return "pantry_items"
}

func (p *PantryItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
