package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chefsync/backend/internal/service"
)

// PantryHandler handles pantry views and pantry-based recommendations
type PantryHandler struct {
	pantry          *service.PantryService
	recommendations *service.RecommendationService
}

func NewPantryHandler(pantry *service.PantryService, recommendations *service.RecommendationService) *PantryHandler {
	return &PantryHandler{
		pantry:          pantry,
		recommendations: recommendations,
	}
}

func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/:id/pantry", h.GetPantry)
	router.GET("/users/:id/recommendations", h.GetRecommendations)
}

func (h *PantryHandler) GetPantry(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	items, err := h.pantry.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pantry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pantry": items})
}

// GetRecommendations ranks public recipes by how many of the user's
// pantry ingredients they use. An empty pantry is a valid state and is
// reported as such rather than as "no matches".
func (h *PantryHandler) GetRecommendations(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	pantryIDs, err := h.pantry.IngredientIDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pantry"})
		return
	}

	if len(pantryIDs) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"recommendations": []service.Recommendation{},
			"pantry_empty":    true,
		})
		return
	}

	recommendations, err := h.recommendations.Recommend(c.Request.Context(), pantryIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": recommendations,
		"pantry_empty":    false,
	})
}
