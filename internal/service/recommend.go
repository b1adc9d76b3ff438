package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chefsync/backend/internal/models"
)

// maxRecommendations caps the ranked result.
const maxRecommendations = 5

// Recommendation is one ranked row: how many of the recipe's required
// ingredients the pantry covers, out of how many it needs in total.
type Recommendation struct {
	RecipeID           uuid.UUID `json:"recipe_id"`
	Title              string    `json:"title"`
	MatchedIngredients int       `json:"matched_ingredients"`
	TotalIngredients   int       `json:"total_ingredients"`
}

// RecommendationService ranks public recipes by pantry ingredient coverage.
type RecommendationService struct {
	db *gorm.DB
}

func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{db: db}
}

// Recommend returns up to five public recipes sharing at least one
// ingredient with the pantry set, ordered by matched count descending,
// then total required ingredients ascending, then recipe id ascending.
// An empty pantry yields an empty result, not an error.
func (s *RecommendationService) Recommend(ctx context.Context, pantryIngredientIDs []uuid.UUID) ([]Recommendation, error) {
	if len(pantryIngredientIDs) == 0 {
		return []Recommendation{}, nil
	}

	pantry := make(map[uuid.UUID]struct{}, len(pantryIngredientIDs))
	for _, id := range pantryIngredientIDs {
		pantry[id] = struct{}{}
	}

	type recipeRow struct {
		ID    uuid.UUID
		Title string
	}
	var recipes []recipeRow
	var required []models.RecipeIngredient

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Recipe{}).
			Where("is_public = ?", true).
			Select("id", "title").
			Find(&recipes).Error; err != nil {
			return fmt.Errorf("failed to load public recipes: %w", err)
		}
		if len(recipes) == 0 {
			return nil
		}

		recipeIDs := make([]uuid.UUID, len(recipes))
		for i, r := range recipes {
			recipeIDs[i] = r.ID
		}
		if err := tx.Where("recipe_id IN ?", recipeIDs).
			Find(&required).Error; err != nil {
			return fmt.Errorf("failed to load recipe ingredients: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// required ingredient sets keyed by recipe; duplicate join rows
	// must not inflate the counts
	requiredSets := make(map[uuid.UUID]map[uuid.UUID]struct{}, len(recipes))
	for _, ri := range required {
		set := requiredSets[ri.RecipeID]
		if set == nil {
			set = make(map[uuid.UUID]struct{})
			requiredSets[ri.RecipeID] = set
		}
		set[ri.IngredientID] = struct{}{}
	}

	results := make([]Recommendation, 0, len(recipes))
	for _, r := range recipes {
		set := requiredSets[r.ID]
		matched := 0
		for ingredientID := range set {
			if _, ok := pantry[ingredientID]; ok {
				matched++
			}
		}
		if matched == 0 {
			// no shared ingredients: excluded, not ranked last
			continue
		}
		results = append(results, Recommendation{
			RecipeID:           r.ID,
			Title:              r.Title,
			MatchedIngredients: matched,
			TotalIngredients:   len(set),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchedIngredients != results[j].MatchedIngredients {
			return results[i].MatchedIngredients > results[j].MatchedIngredients
		}
		if results[i].TotalIngredients != results[j].TotalIngredients {
			return results[i].TotalIngredients < results[j].TotalIngredients
		}
		return strings.Compare(results[i].RecipeID.String(), results[j].RecipeID.String()) < 0
	})

	if len(results) > maxRecommendations {
		results = results[:maxRecommendations]
	}
	return results, nil
}
