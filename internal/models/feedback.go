package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeFeedback is a cook's after-the-fact rating of a recipe.
// Ratings are constrained to [1,5] at write time.
type RecipeFeedback struct {
	ID                uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	RecipeID          uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User              *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating            int       `gorm:"not null" json:"rating"`
	DifficultyRating  int       `gorm:"not null" json:"difficulty_rating"`
	ActualCookingTime *int      `json:"actual_cooking_time,omitempty"`
	Comment           string    `gorm:"type:text" json:"comment"`
}

func (RecipeFeedback) TableName() string {
	return "recipe_feedback"
}

func (f *RecipeFeedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
