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

// SearchCriteria holds the optional recipe search constraints. Zero-value
// string fields and a nil MaxCookTime mean "no constraint". Criteria are
// combined with AND across fields; the tag set matches a recipe when it
// carries at least one of the named tags.
type SearchCriteria struct {
	Cuisine     string
	Difficulty  string
	MaxCookTime *int
	Tags        []string
}

// RecipeDetail is the denormalized single-recipe view: the full recipe
// record joined with its tag names, ingredient lines and feedback history.
type RecipeDetail struct {
	Recipe      models.Recipe    `json:"recipe"`
	Tags        []string         `json:"tags"`
	Ingredients []IngredientLine `json:"ingredients"`
	Feedback    []FeedbackEntry  `json:"feedback"`
}

type IngredientLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Notes    string  `json:"notes,omitempty"`
}

type FeedbackEntry struct {
	Username          string    `json:"username"`
	Rating            int       `json:"rating"`
	DifficultyRating  int       `json:"difficulty_rating"`
	ActualCookingTime *int      `json:"actual_cooking_time,omitempty"`
	Comment           string    `json:"comment"`
	CreatedAt         time.Time `json:"created_at"`
}

// RecipeService serves the read-side recipe views: criteria search over
// the public corpus and single-recipe detail composition.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Search filters public recipes by the given criteria. With no criteria
// set it returns every public recipe. Results are ordered by recipe id
// ascending so repeated calls over the same corpus agree.
func (s *RecipeService) Search(ctx context.Context, criteria SearchCriteria) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Where("is_public = ?", true)

	if criteria.Cuisine != "" {
		query = query.Where("cuisine = ?", criteria.Cuisine)
	}
	if criteria.Difficulty != "" {
		query = query.Where("difficulty = ?", criteria.Difficulty)
	}
	if criteria.MaxCookTime != nil {
		query = query.Where("cook_time <= ?", *criteria.MaxCookTime)
	}
	if len(criteria.Tags) > 0 {
		tagged := s.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.name IN ?", criteria.Tags)
		query = query.Where("id IN (?)", tagged)
	}

	var recipes []models.Recipe
	if err := query.Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return recipes, nil
}

// Detail composes the full view of one recipe. All joined reads run in a
// single read transaction so they observe one snapshot of the corpus.
// Returns ErrRecipeNotFound when the id does not resolve; a recipe with
// no tags, ingredients or feedback yields empty collections.
func (s *RecipeService) Detail(ctx context.Context, id uuid.UUID) (*RecipeDetail, error) {
	var detail RecipeDetail

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&detail.Recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("failed to load recipe: %w", err)
		}

		detail.Tags = []string{}
		if err := tx.Table("recipe_tags").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("recipe_tags.recipe_id = ?", id).
			Order("tags.name ASC").
			Pluck("tags.name", &detail.Tags).Error; err != nil {
			return fmt.Errorf("failed to load recipe tags: %w", err)
		}

		detail.Ingredients = []IngredientLine{}
		if err := tx.Table("recipe_ingredients").
			Select("ingredients.name, recipe_ingredients.quantity, recipe_ingredients.unit, recipe_ingredients.notes").
			Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
			Where("recipe_ingredients.recipe_id = ?", id).
			Order("ingredients.name ASC").
			Scan(&detail.Ingredients).Error; err != nil {
			return fmt.Errorf("failed to load recipe ingredients: %w", err)
		}

		detail.Feedback = []FeedbackEntry{}
		if err := tx.Table("recipe_feedback").
			Select("users.username, recipe_feedback.rating, recipe_feedback.difficulty_rating, recipe_feedback.actual_cooking_time, recipe_feedback.comment, recipe_feedback.created_at").
			Joins("JOIN users ON users.id = recipe_feedback.user_id").
			Where("recipe_feedback.recipe_id = ?", id).
			Order("recipe_feedback.created_at DESC").
			Scan(&detail.Feedback).Error; err != nil {
			return fmt.Errorf("failed to load recipe feedback: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &detail, nil
}
