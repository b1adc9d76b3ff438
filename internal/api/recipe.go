package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chefsync/backend/internal/service"
)

// RecipeHandler handles recipe discovery requests
type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// ListRecipes filters public recipes by the optional query criteria:
// cuisine, difficulty, max_cook_time and tags (comma-separated names).
// No criteria returns the whole public corpus.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	criteria := service.SearchCriteria{
		Cuisine:    c.Query("cuisine"),
		Difficulty: c.Query("difficulty"),
	}

	if raw := c.Query("max_cook_time"); raw != "" {
		maxCookTime, err := strconv.Atoi(raw)
		if err != nil || maxCookTime < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_cook_time must be a non-negative integer"})
			return
		}
		criteria.MaxCookTime = &maxCookTime
	}

	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				criteria.Tags = append(criteria.Tags, tag)
			}
		}
	}

	recipes, err := h.recipes.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe returns the composed detail view of one recipe.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	detail, err := h.recipes.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
