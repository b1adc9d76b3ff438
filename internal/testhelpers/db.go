package testhelpers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chefsync/backend/internal/database"
	"github.com/chefsync/backend/internal/models"
)

// NewTestDB opens an in-memory sqlite database migrated to the current
// schema. Each test gets its own named database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database pool: %v", err)
	}
	// one connection keeps the shared in-memory database alive
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// CreateUser inserts a user with a derived email.
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

// CreateIngredient inserts an ingredient by name.
func CreateIngredient(t *testing.T, db *gorm.DB, name string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, Category: "Test", Unit: "grams"}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to create ingredient %s: %v", name, err)
	}
	return ingredient
}

// CreateRecipe inserts the given recipe, filling in sane defaults for
// any zero fields a valid row needs.
func CreateRecipe(t *testing.T, db *gorm.DB, recipe *models.Recipe) *models.Recipe {
	t.Helper()
	if recipe.Title == "" {
		recipe.Title = "Test Recipe"
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = models.DifficultyEasy
	}
	if recipe.TotalTime == 0 {
		recipe.TotalTime = recipe.PrepTime + recipe.CookTime
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe %s: %v", recipe.Title, err)
	}
	return recipe
}

// RequireIngredients attaches the named ingredients to a recipe,
// creating any that do not exist yet.
func RequireIngredients(t *testing.T, db *gorm.DB, recipeID uuid.UUID, names ...string) {
	t.Helper()
	for _, name := range names {
		var ingredient models.Ingredient
		err := db.Where("name = ?", name).First(&ingredient).Error
		if err == gorm.ErrRecordNotFound {
			ingredient = *CreateIngredient(t, db, name)
		} else if err != nil {
			t.Fatalf("failed to look up ingredient %s: %v", name, err)
		}
		line := &models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredient.ID,
			Quantity:     1,
			Unit:         ingredient.Unit,
		}
		if err := db.Create(line).Error; err != nil {
			t.Fatalf("failed to attach ingredient %s: %v", name, err)
		}
	}
}

// TagRecipe attaches the named tags to a recipe, creating any that do
// not exist yet.
func TagRecipe(t *testing.T, db *gorm.DB, recipeID uuid.UUID, names ...string) {
	t.Helper()
	for _, name := range names {
		var tag models.Tag
		err := db.Where("name = ?", name).First(&tag).Error
		if err == gorm.ErrRecordNotFound {
			tag = models.Tag{Name: name}
			if err := db.Create(&tag).Error; err != nil {
				t.Fatalf("failed to create tag %s: %v", name, err)
			}
		} else if err != nil {
			t.Fatalf("failed to look up tag %s: %v", name, err)
		}
		if err := db.Create(&models.RecipeTag{RecipeID: recipeID, TagID: tag.ID}).Error; err != nil {
			t.Fatalf("failed to attach tag %s: %v", name, err)
		}
	}
}

// StockPantry adds the ingredient ids to a user's pantry.
func StockPantry(t *testing.T, db *gorm.DB, userID uuid.UUID, ingredientIDs ...uuid.UUID) {
	t.Helper()
	for _, id := range ingredientIDs {
		item := &models.PantryItem{
			UserID:       userID,
			IngredientID: id,
			Quantity:     1,
			PurchaseDate: time.Now(),
		}
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("failed to stock pantry: %v", err)
		}
	}
}
