package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chefsync/backend/internal/service"
)

// MealPlanHandler handles meal plan listing and calendar requests
type MealPlanHandler struct {
	plans *service.MealPlanService
}

func NewMealPlanHandler(plans *service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/:id/meal-plans", h.ListMealPlans)
	router.GET("/meal-plans/:id", h.GetCalendar)
}

func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	plans, err := h.plans.ListPlans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list meal plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plans": plans})
}

// GetCalendar returns the plan's entries composed into dated rows with
// one cell per meal slot.
func (h *MealPlanHandler) GetCalendar(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	calendar, err := h.plans.Calendar(c.Request.Context(), planID)
	if err != nil {
		if errors.Is(err, service.ErrMealPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal plan"})
		return
	}

	c.JSON(http.StatusOK, calendar)
}
