package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PantryLine is one stocked ingredient joined with its catalog entry.
type PantryLine struct {
	IngredientID uuid.UUID  `json:"ingredient_id"`
	Name         string     `json:"name"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
}

// PantryService serves pantry views and the ingredient-id set the
// recommender consumes.
type PantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

// List returns the user's pantry joined with ingredient names, ordered
// by ingredient name.
func (s *PantryService) List(ctx context.Context, userID uuid.UUID) ([]PantryLine, error) {
	lines := []PantryLine{}
	if err := s.db.WithContext(ctx).Table("pantry_items").
		Select("pantry_items.ingredient_id, ingredients.name, pantry_items.quantity, ingredients.unit, pantry_items.expiry_date").
		Joins("JOIN ingredients ON ingredients.id = pantry_items.ingredient_id").
		Where("pantry_items.user_id = ?", userID).
		Order("ingredients.name ASC").
		Scan(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to list pantry: %w", err)
	}
	return lines, nil
}

// IngredientIDs returns the distinct ingredient ids stocked in the
// user's pantry. Quantities and expiry dates are irrelevant here.
func (s *PantryService) IngredientIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := s.db.WithContext(ctx).Table("pantry_items").
		Distinct("ingredient_id").
		Where("user_id = ?", userID).
		Pluck("ingredient_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load pantry ingredients: %w", err)
	}
	return ids, nil
}
