package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefsync/backend/internal/models"
	"github.com/chefsync/backend/internal/testhelpers"
)

func TestSearchNoCriteriaReturnsAllPublic(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	var publicIDs []string
	for _, title := range []string{"Bowl A", "Bowl B", "Bowl C"} {
		r := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: title, IsPublic: true})
		publicIDs = append(publicIDs, r.ID.String())
	}
	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Secret Sauce", IsPublic: false})

	results, err := svc.Search(context.Background(), SearchCriteria{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	sort.Strings(publicIDs)
	for i, r := range results {
		assert.Equal(t, publicIDs[i], r.ID.String())
		assert.True(t, r.IsPublic)
	}
}

func TestSearchCuisineIsExactAndCaseSensitive(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Salmon Bowl", Cuisine: "Mediterranean", IsPublic: true})

	results, err := svc.Search(context.Background(), SearchCriteria{Cuisine: "Mediterranean"})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = svc.Search(context.Background(), SearchCriteria{Cuisine: "mediterranean"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchMaxCookTimeIsInclusive(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Quick", CookTime: 15, IsPublic: true})
	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Exact", CookTime: 30, IsPublic: true})
	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Slow", CookTime: 31, IsPublic: true})

	maxCookTime := 30
	results, err := svc.Search(context.Background(), SearchCriteria{MaxCookTime: &maxCookTime})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.LessOrEqual(t, r.CookTime, 30)
	}
}

func TestSearchTagSetMatchesAnyNamedTag(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	bowl := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Mediterranean Salmon Bowl", Cuisine: "Mediterranean", IsPublic: true})
	testhelpers.TagRecipe(t, db, bowl.ID, "Healthy", "High Protein", "Mediterranean")

	stew := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Beef Stew", Cuisine: "French", IsPublic: true})
	testhelpers.TagRecipe(t, db, stew.ID, "Comfort Food")

	// the bowl has "Healthy" even though it lacks "Vegan"
	results, err := svc.Search(context.Background(), SearchCriteria{
		Cuisine: "Mediterranean",
		Tags:    []string{"Healthy", "Vegan"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, bowl.ID, results[0].ID)
}

func TestSearchUnknownTagNamesMatchNothing(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	r := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Bowl", IsPublic: true})
	testhelpers.TagRecipe(t, db, r.ID, "Healthy")

	results, err := svc.Search(context.Background(), SearchCriteria{Tags: []string{"No Such Tag"}})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchCombinesCriteriaWithAND(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "A", Cuisine: "Thai", CookTime: 20, IsPublic: true})
	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "B", Cuisine: "Thai", CookTime: 60, IsPublic: true})
	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "C", Cuisine: "Greek", CookTime: 20, IsPublic: true})

	maxCookTime := 30
	combined, err := svc.Search(context.Background(), SearchCriteria{Cuisine: "Thai", MaxCookTime: &maxCookTime})
	require.NoError(t, err)

	byCuisine, err := svc.Search(context.Background(), SearchCriteria{Cuisine: "Thai"})
	require.NoError(t, err)
	byTime, err := svc.Search(context.Background(), SearchCriteria{MaxCookTime: &maxCookTime})
	require.NoError(t, err)

	inBoth := func(id uuid.UUID) bool {
		found := func(rs []models.Recipe) bool {
			for _, r := range rs {
				if r.ID == id {
					return true
				}
			}
			return false
		}
		return found(byCuisine) && found(byTime)
	}

	require.Len(t, combined, 1)
	assert.Equal(t, "A", combined[0].Title)
	for _, r := range combined {
		assert.True(t, inBoth(r.ID))
	}
}

func TestSearchDifficultyFilter(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Simple", Difficulty: models.DifficultyEasy, IsPublic: true})
	testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Tricky", Difficulty: models.DifficultyHard, IsPublic: true})

	results, err := svc.Search(context.Background(), SearchCriteria{Difficulty: models.DifficultyHard})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Tricky", results[0].Title)
}

func TestDetailNotFound(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.Detail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestDetailComposesTagsIngredientsAndFeedback(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	owner := testhelpers.CreateUser(t, db, "owner")
	reviewer := testhelpers.CreateUser(t, db, "reviewer")

	recipe := testhelpers.CreateRecipe(t, db, &models.Recipe{
		UserID:   owner.ID,
		Title:    "Mediterranean Salmon Bowl",
		Cuisine:  "Mediterranean",
		PrepTime: 15, CookTime: 20, TotalTime: 35,
		Calories: 450, Protein: 35, Carbs: 30, Fats: 22,
		IsPublic: true,
	})
	testhelpers.TagRecipe(t, db, recipe.ID, "Mediterranean", "Healthy", "High Protein")
	testhelpers.RequireIngredients(t, db, recipe.ID, "Salmon", "Quinoa", "Spinach")

	older := models.RecipeFeedback{
		RecipeID: recipe.ID, UserID: reviewer.ID,
		Rating: 4, DifficultyRating: 2, Comment: "solid",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	newer := models.RecipeFeedback{
		RecipeID: recipe.ID, UserID: reviewer.ID,
		Rating: 5, DifficultyRating: 3, Comment: "even better reheated",
		CreatedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	detail, err := svc.Detail(context.Background(), recipe.ID)
	require.NoError(t, err)

	assert.Equal(t, recipe.ID, detail.Recipe.ID)
	assert.Equal(t, []string{"Healthy", "High Protein", "Mediterranean"}, detail.Tags)

	require.Len(t, detail.Ingredients, 3)
	assert.Equal(t, "Quinoa", detail.Ingredients[0].Name)
	assert.Equal(t, "Salmon", detail.Ingredients[1].Name)
	assert.Equal(t, "Spinach", detail.Ingredients[2].Name)

	require.Len(t, detail.Feedback, 2)
	assert.Equal(t, "even better reheated", detail.Feedback[0].Comment)
	assert.Equal(t, "solid", detail.Feedback[1].Comment)
	assert.Equal(t, "reviewer", detail.Feedback[0].Username)
}

func TestDetailEmptyCollectionsAreNotErrors(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	recipe := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Bare Bones", IsPublic: true})

	detail, err := svc.Detail(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.Tags)
	assert.Empty(t, detail.Tags)
	assert.NotNil(t, detail.Ingredients)
	assert.Empty(t, detail.Ingredients)
	assert.NotNil(t, detail.Feedback)
	assert.Empty(t, detail.Feedback)
}
