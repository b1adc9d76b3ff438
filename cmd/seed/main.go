// Command seed populates a development database with the sample
// ChefSync corpus: the catalog of ingredients and tags, a handful of
// users, the canonical public recipes, pantry stock, one meal plan and
// generated feedback.
package main

import (
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/chefsync/backend/config"
	"github.com/chefsync/backend/internal/database"
	"github.com/chefsync/backend/internal/models"
)

type seedIngredient struct {
	name, category, unit, info string
}

type seedRecipe struct {
	owner        string
	title        string
	description  string
	cuisine      string
	difficulty   string
	prepTime     int
	cookTime     int
	servings     int
	instructions string
	calories     int
	protein      float64
	carbs        float64
	fats         float64
	ingredients  []struct {
		name     string
		quantity float64
		unit     string
	}
	tags []string
}

var ingredients = []seedIngredient{
	{"Chicken Breast", "Protein", "grams", "Lean protein source, low in fat"},
	{"Salmon", "Protein", "grams", "Rich in omega-3 fatty acids"},
	{"Tofu", "Protein", "grams", "Plant-based complete protein"},
	{"Beef Sirloin", "Protein", "grams", "High-quality lean red meat"},
	{"Spinach", "Vegetable", "cups", "Iron-rich leafy green"},
	{"Bell Pepper", "Vegetable", "pieces", "High in vitamin C"},
	{"Zucchini", "Vegetable", "pieces", "Low-calorie, high fiber"},
	{"Cauliflower", "Vegetable", "grams", "Versatile cruciferous vegetable"},
	{"Quinoa", "Grain", "grams", "Complete protein grain"},
	{"Brown Rice", "Grain", "grams", "Whole grain with complex carbohydrates"},
	{"Whole Wheat Pasta", "Grain", "grams", "High fiber alternative"},
	{"Greek Yogurt", "Dairy", "ml", "Probiotic-rich protein source"},
	{"Feta Cheese", "Dairy", "grams", "Tangy Mediterranean cheese"},
}

var tags = map[string]string{
	"Healthy":       "Nutritious and balanced recipes",
	"Quick Meal":    "Recipes under 30 minutes",
	"Vegetarian":    "No meat recipes",
	"Gluten-Free":   "Suitable for gluten-sensitive diets",
	"High Protein":  "Recipes with substantial protein content",
	"Low Carb":      "Reduced carbohydrate recipes",
	"Keto":          "Ketogenic diet compatible",
	"Mediterranean": "Following Mediterranean diet principles",
	"Vegan":         "Plant-based recipes",
	"Dairy-Free":    "No dairy ingredients",
}

var usernames = []string{
	"culinary_artist", "home_cook_hero", "vegan_explorer",
	"fitness_foodie", "global_gastronome", "budget_chef",
}

var recipes = []seedRecipe{
	{
		owner:       "culinary_artist",
		title:       "Mediterranean Salmon Bowl",
		description: "Healthy salmon bowl with quinoa and Mediterranean flavors",
		cuisine:     "Mediterranean", difficulty: models.DifficultyMedium,
		prepTime: 15, cookTime: 20, servings: 2,
		instructions: "Cook quinoa in vegetable broth. Season and grill the salmon. Serve over a bed of quinoa with fresh herbs and lemon zest.",
		calories:     450, protein: 35, carbs: 30, fats: 22,
		ingredients: []struct {
			name     string
			quantity float64
			unit     string
		}{
			{"Salmon", 200, "grams"},
			{"Quinoa", 100, "grams"},
			{"Spinach", 1, "cups"},
		},
		tags: []string{"Healthy", "High Protein", "Mediterranean"},
	},
	{
		owner:       "culinary_artist",
		title:       "Quick Vegetarian Stir-Fry",
		description: "Fast and nutritious plant-based meal",
		cuisine:     "Asian Fusion", difficulty: models.DifficultyEasy,
		prepTime: 10, cookTime: 15, servings: 2,
		instructions: "Press and cube the tofu, stir-fry until golden, add the vegetables and serve over brown rice.",
		calories:     320, protein: 25, carbs: 35, fats: 15,
		ingredients: []struct {
			name     string
			quantity float64
			unit     string
		}{
			{"Tofu", 250, "grams"},
			{"Bell Pepper", 1, "pieces"},
			{"Brown Rice", 100, "grams"},
		},
		tags: []string{"Vegetarian", "Quick Meal", "Low Carb"},
	},
	{
		owner:       "fitness_foodie",
		title:       "Protein-Packed Chicken Quinoa Bowl",
		description: "Balanced meal for fitness enthusiasts",
		cuisine:     "Health Food", difficulty: models.DifficultyMedium,
		prepTime: 20, cookTime: 25, servings: 2,
		instructions: "Marinate and grill the chicken, cook quinoa with turmeric, layer and top with fresh spinach.",
		calories:     480, protein: 40, carbs: 40, fats: 18,
		ingredients: []struct {
			name     string
			quantity float64
			unit     string
		}{
			{"Chicken Breast", 250, "grams"},
			{"Quinoa", 150, "grams"},
			{"Spinach", 1, "cups"},
		},
		tags: []string{"High Protein", "Healthy", "Keto"},
	},
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	gofakeit.Seed(0)

	users := make(map[string]*models.User, len(usernames))
	for _, username := range usernames {
		user := &models.User{
			Username: username,
			Email:    username + "@chefsync.com",
			Bio:      gofakeit.Sentence(8),
		}
		if err := db.Create(user).Error; err != nil {
			logger.Fatal("failed to seed user", zap.String("username", username), zap.Error(err))
		}
		users[username] = user
	}

	ingredientIDs := make(map[string]*models.Ingredient, len(ingredients))
	for _, in := range ingredients {
		ingredient := &models.Ingredient{
			Name:            in.name,
			Category:        in.category,
			Unit:            in.unit,
			NutritionalInfo: in.info,
		}
		if err := db.Create(ingredient).Error; err != nil {
			logger.Fatal("failed to seed ingredient", zap.String("name", in.name), zap.Error(err))
		}
		ingredientIDs[in.name] = ingredient
	}

	tagIDs := make(map[string]*models.Tag, len(tags))
	for name, description := range tags {
		tag := &models.Tag{Name: name, Description: description}
		if err := db.Create(tag).Error; err != nil {
			logger.Fatal("failed to seed tag", zap.String("name", name), zap.Error(err))
		}
		tagIDs[name] = tag
	}

	seeded := make([]*models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		recipe := &models.Recipe{
			UserID:       users[r.owner].ID,
			Title:        r.title,
			Description:  r.description,
			Cuisine:      r.cuisine,
			Difficulty:   r.difficulty,
			PrepTime:     r.prepTime,
			CookTime:     r.cookTime,
			TotalTime:    r.prepTime + r.cookTime,
			Servings:     r.servings,
			Instructions: r.instructions,
			Calories:     r.calories,
			Protein:      r.protein,
			Carbs:        r.carbs,
			Fats:         r.fats,
			IsPublic:     true,
		}
		if err := db.Create(recipe).Error; err != nil {
			logger.Fatal("failed to seed recipe", zap.String("title", r.title), zap.Error(err))
		}
		for _, ri := range r.ingredients {
			line := &models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredientIDs[ri.name].ID,
				Quantity:     ri.quantity,
				Unit:         ri.unit,
			}
			if err := db.Create(line).Error; err != nil {
				logger.Fatal("failed to seed recipe ingredient", zap.Error(err))
			}
		}
		for _, tagName := range r.tags {
			if err := db.Create(&models.RecipeTag{RecipeID: recipe.ID, TagID: tagIDs[tagName].ID}).Error; err != nil {
				logger.Fatal("failed to seed recipe tag", zap.Error(err))
			}
		}
		seeded = append(seeded, recipe)
	}

	// Pantry for the first user: enough to cook the salmon bowl.
	pantryOwner := users["home_cook_hero"]
	for _, name := range []string{"Salmon", "Quinoa", "Spinach", "Tofu"} {
		item := &models.PantryItem{
			UserID:       pantryOwner.ID,
			IngredientID: ingredientIDs[name].ID,
			Quantity:     gofakeit.Float64Range(1, 500),
			PurchaseDate: time.Now().AddDate(0, 0, -gofakeit.Number(0, 14)),
		}
		if err := db.Create(item).Error; err != nil {
			logger.Fatal("failed to seed pantry item", zap.Error(err))
		}
	}

	// One week-long meal plan with a few scheduled meals.
	start := time.Now().Truncate(24 * time.Hour)
	plan := &models.MealPlan{
		UserID:    pantryOwner.ID,
		Name:      "Weekly Meal Prep",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	}
	if err := db.Create(plan).Error; err != nil {
		logger.Fatal("failed to seed meal plan", zap.Error(err))
	}
	entries := []models.MealPlanEntry{
		{PlanID: plan.ID, RecipeID: seeded[0].ID, MealDate: start, MealType: models.MealDinner},
		{PlanID: plan.ID, RecipeID: seeded[1].ID, MealDate: start.AddDate(0, 0, 1), MealType: models.MealLunch},
		{PlanID: plan.ID, RecipeID: seeded[2].ID, MealDate: start.AddDate(0, 0, 3), MealType: models.MealDinner},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			logger.Fatal("failed to seed meal plan entry", zap.Error(err))
		}
	}

	// Generated feedback on every public recipe.
	for _, recipe := range seeded {
		for _, username := range usernames {
			if users[username].ID == recipe.UserID || gofakeit.Bool() {
				continue
			}
			cookTime := recipe.CookTime + gofakeit.Number(-5, 15)
			feedback := &models.RecipeFeedback{
				RecipeID:          recipe.ID,
				UserID:            users[username].ID,
				Rating:            gofakeit.Number(3, 5),
				DifficultyRating:  gofakeit.Number(1, 4),
				ActualCookingTime: &cookTime,
				Comment:           gofakeit.Sentence(10),
			}
			if err := db.Create(feedback).Error; err != nil {
				logger.Fatal("failed to seed feedback", zap.Error(err))
			}
		}
	}

	logger.Info("seed complete",
		zap.Int("users", len(users)),
		zap.Int("ingredients", len(ingredientIDs)),
		zap.Int("recipes", len(seeded)),
	)
}
