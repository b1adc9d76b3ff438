package service

import "errors"

var (
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrMealPlanNotFound = errors.New("meal plan not found")
)
