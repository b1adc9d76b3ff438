package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe difficulty levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

type Recipe struct {
	ID           uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Cuisine      string         `gorm:"size:50" json:"cuisine"`
	Difficulty   string         `gorm:"size:10;not null" json:"difficulty"`
	PrepTime     int            `gorm:"not null" json:"prep_time"`
	CookTime     int            `gorm:"not null" json:"cook_time"`
	TotalTime    int            `gorm:"not null" json:"total_time"`
	Servings     int            `json:"servings"`
	Instructions string         `gorm:"type:text" json:"instructions"`
	Calories     int            `json:"calories"`
	Protein      float64        `json:"protein"`
	Carbs        float64        `json:"carbs"`
	Fats         float64        `json:"fats"`
	IsPublic     bool           `gorm:"not null;default:false;index" json:"is_public"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient joins a recipe to an ingredient with the amount used.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	Unit         string    `gorm:"size:20" json:"unit"`
	Notes        string    `json:"notes"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
