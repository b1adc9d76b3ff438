package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal types in their fixed daily order. Calendar rows always carry one
// cell per entry of MealSlots.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

var MealSlots = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// MealPlan start/end dates are advisory bounds; entries are not required
// to fall inside them.
type MealPlan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type MealPlanEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	PlanID   uuid.UUID `gorm:"type:uuid;not null;index" json:"plan_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	MealDate time.Time `gorm:"not null" json:"meal_date"`
	MealType string    `gorm:"size:10;not null" json:"meal_type"`
}

func (MealPlanEntry) TableName() string {
	return "meal_plan_entries"
}

func (e *MealPlanEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
