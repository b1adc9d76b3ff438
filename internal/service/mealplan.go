package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chefsync/backend/internal/models"
)

// RecipeSummary is the per-cell recipe payload of the calendar view.
type RecipeSummary struct {
	RecipeID uuid.UUID `json:"recipe_id"`
	Title    string    `json:"title"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fats     float64   `json:"fats"`
}

// CalendarCell is one meal slot of a day. Recipe is nil for a slot with
// no scheduled entry; the cell itself is always present.
type CalendarCell struct {
	Slot   string         `json:"slot"`
	Recipe *RecipeSummary `json:"recipe"`
}

// DayRow is one calendar day. Rows exist only for dates that have at
// least one entry and always carry exactly one cell per meal slot.
type DayRow struct {
	Date      string         `json:"date"`
	DayOfWeek string         `json:"day_of_week"`
	Cells     []CalendarCell `json:"cells"`
}

// PlanCalendar is the date-by-slot composition of one meal plan.
type PlanCalendar struct {
	PlanID    uuid.UUID `json:"plan_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      []DayRow  `json:"days"`
}

// MealPlanService serves meal plan listings and calendar composition.
type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// ListPlans returns a user's meal plans, oldest first.
func (s *MealPlanService) ListPlans(ctx context.Context, userID uuid.UUID) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	return plans, nil
}

// Calendar composes the plan's entries into dated rows. Dates appear
// ascending and only when they have at least one entry; the plan's
// declared start/end range is reported but not used to pad the calendar.
// When two entries land on the same (date, slot), the first one in
// (date, slot, entry id) order wins and later duplicates are ignored.
func (s *MealPlanService) Calendar(ctx context.Context, planID uuid.UUID) (*PlanCalendar, error) {
	type entryRow struct {
		MealDate time.Time
		MealType string
		RecipeID uuid.UUID
		Title    string
		Calories int
		Protein  float64
		Carbs    float64
		Fats     float64
	}

	var plan models.MealPlan
	var rows []entryRow

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&plan, "id = ?", planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealPlanNotFound
			}
			return fmt.Errorf("failed to load meal plan: %w", err)
		}

		if err := tx.Table("meal_plan_entries").
			Select("meal_plan_entries.meal_date, meal_plan_entries.meal_type, recipes.id AS recipe_id, recipes.title, recipes.calories, recipes.protein, recipes.carbs, recipes.fats").
			Joins("JOIN recipes ON recipes.id = meal_plan_entries.recipe_id").
			Where("meal_plan_entries.plan_id = ?", planID).
			Order("meal_plan_entries.meal_date ASC, meal_plan_entries.meal_type ASC, meal_plan_entries.id ASC").
			Scan(&rows).Error; err != nil {
			return fmt.Errorf("failed to load meal plan entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	calendar := &PlanCalendar{
		PlanID:    plan.ID,
		Name:      plan.Name,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
		Days:      []DayRow{},
	}

	var dates []string
	byDate := make(map[string]map[string]*RecipeSummary)
	weekdays := make(map[string]string)

	for _, row := range rows {
		mealDate := row.MealDate.UTC()
		date := mealDate.Format("2006-01-02")
		slots := byDate[date]
		if slots == nil {
			slots = make(map[string]*RecipeSummary)
			byDate[date] = slots
			weekdays[date] = mealDate.Weekday().String()
			dates = append(dates, date)
		}
		if _, taken := slots[row.MealType]; taken {
			// keep-first on duplicate (date, slot)
			continue
		}
		slots[row.MealType] = &RecipeSummary{
			RecipeID: row.RecipeID,
			Title:    row.Title,
			Calories: row.Calories,
			Protein:  row.Protein,
			Carbs:    row.Carbs,
			Fats:     row.Fats,
		}
	}

	for _, date := range dates {
		day := DayRow{
			Date:      date,
			DayOfWeek: weekdays[date],
			Cells:     make([]CalendarCell, 0, len(models.MealSlots)),
		}
		for _, slot := range models.MealSlots {
			day.Cells = append(day.Cells, CalendarCell{Slot: slot, Recipe: byDate[date][slot]})
		}
		calendar.Days = append(calendar.Days, day)
	}

	return calendar, nil
}
