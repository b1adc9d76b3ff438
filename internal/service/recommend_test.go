package service

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefsync/backend/internal/models"
	"github.com/chefsync/backend/internal/testhelpers"
)

func TestRecommendEmptyPantry(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecommendationService(db)

	recs, err := svc.Recommend(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommendExcludesRecipesWithNoOverlap(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecommendationService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	salmon := testhelpers.CreateIngredient(t, db, "Salmon")
	testhelpers.CreateIngredient(t, db, "Tofu")

	bowl := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Salmon Bowl", IsPublic: true})
	testhelpers.RequireIngredients(t, db, bowl.ID, "Salmon")

	stirfry := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Tofu Stir-Fry", IsPublic: true})
	testhelpers.RequireIngredients(t, db, stirfry.ID, "Tofu")

	recs, err := svc.Recommend(context.Background(), []uuid.UUID{salmon.ID})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, bowl.ID, recs[0].RecipeID)
}

func TestRecommendIgnoresPrivateRecipes(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecommendationService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	salmon := testhelpers.CreateIngredient(t, db, "Salmon")

	private := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Private Salmon", IsPublic: false})
	testhelpers.RequireIngredients(t, db, private.ID, "Salmon")

	recs, err := svc.Recommend(context.Background(), []uuid.UUID{salmon.ID})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendOrdersByMatchedThenTotal(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecommendationService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	salmon := testhelpers.CreateIngredient(t, db, "Salmon")
	quinoa := testhelpers.CreateIngredient(t, db, "Quinoa")
	spinach := testhelpers.CreateIngredient(t, db, "Spinach")

	// 3 of 3 matched
	bowl := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Salmon Bowl", IsPublic: true})
	testhelpers.RequireIngredients(t, db, bowl.ID, "Salmon", "Quinoa", "Spinach")

	// 2 of 4 matched
	salad := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Big Salad", IsPublic: true})
	testhelpers.RequireIngredients(t, db, salad.ID, "Salmon", "Spinach", "Lemon", "Feta")

	// 2 of 2 matched: same matched count as the salad, fewer required
	toast := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Salmon Toast", IsPublic: true})
	testhelpers.RequireIngredients(t, db, toast.ID, "Salmon", "Spinach")

	recs, err := svc.Recommend(context.Background(), []uuid.UUID{salmon.ID, quinoa.ID, spinach.ID})
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Salmon Bowl", recs[0].Title)
	assert.Equal(t, 3, recs[0].MatchedIngredients)
	assert.Equal(t, 3, recs[0].TotalIngredients)

	assert.Equal(t, "Salmon Toast", recs[1].Title)
	assert.Equal(t, 2, recs[1].MatchedIngredients)
	assert.Equal(t, 2, recs[1].TotalIngredients)

	assert.Equal(t, "Big Salad", recs[2].Title)
	assert.Equal(t, 2, recs[2].MatchedIngredients)
	assert.Equal(t, 4, recs[2].TotalIngredients)
}

func TestRecommendTieBreaksByRecipeID(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecommendationService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	salmon := testhelpers.CreateIngredient(t, db, "Salmon")

	var ids []string
	for i := 0; i < 3; i++ {
		r := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: fmt.Sprintf("Twin %d", i), IsPublic: true})
		testhelpers.RequireIngredients(t, db, r.ID, "Salmon")
		ids = append(ids, r.ID.String())
	}
	sort.Strings(ids)

	recs, err := svc.Recommend(context.Background(), []uuid.UUID{salmon.ID})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for i, rec := range recs {
		assert.Equal(t, ids[i], rec.RecipeID.String())
	}
}

func TestRecommendCapsAtFive(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecommendationService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	salmon := testhelpers.CreateIngredient(t, db, "Salmon")

	for i := 0; i < 8; i++ {
		r := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: fmt.Sprintf("Dish %d", i), IsPublic: true})
		testhelpers.RequireIngredients(t, db, r.ID, "Salmon")
	}

	recs, err := svc.Recommend(context.Background(), []uuid.UUID{salmon.ID})
	require.NoError(t, err)
	assert.Len(t, recs, 5)
}

func TestRecommendDuplicateIngredientRowsDoNotInflateCounts(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecommendationService(db)
	owner := testhelpers.CreateUser(t, db, "owner")

	salmon := testhelpers.CreateIngredient(t, db, "Salmon")

	r := testhelpers.CreateRecipe(t, db, &models.Recipe{UserID: owner.ID, Title: "Double Salmon", IsPublic: true})
	testhelpers.RequireIngredients(t, db, r.ID, "Salmon")
	testhelpers.RequireIngredients(t, db, r.ID, "Salmon")

	recs, err := svc.Recommend(context.Background(), []uuid.UUID{salmon.ID})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].MatchedIngredients)
	assert.Equal(t, 1, recs[0].TotalIngredients)
}
