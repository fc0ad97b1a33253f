package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/arvhie/payoff/payoff-backend/internal/service"
)

// MealPlanHandler handles recipe and meal plan HTTP requests
type MealPlanHandler struct {
	mealPlanService *service.MealPlanService
}

// NewMealPlanHandler creates a new MealPlanHandler
func NewMealPlanHandler(mealPlanService *service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

// RecipeRequest represents the create/update recipe request body
type RecipeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// AssignMealRequest represents the assign meal request body
type AssignMealRequest struct {
	RecipeID string `json:"recipeId"`
}

// CreateRecipe handles POST /api/v1/recipes
func (h *MealPlanHandler) CreateRecipe(c echo.Context) error {
	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	recipe, err := h.mealPlanService.CreateRecipe(req.Name, req.Description)
	if err != nil {
		if isRecipeValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Msg("Failed to create recipe")
		return NewInternalError(c, "Failed to create recipe")
	}

	return c.JSON(http.StatusCreated, recipe)
}

// GetRecipes handles GET /api/v1/recipes
func (h *MealPlanHandler) GetRecipes(c echo.Context) error {
	recipes, err := h.mealPlanService.GetRecipes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get recipes")
		return NewInternalError(c, "Failed to get recipes")
	}

	return c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /api/v1/recipes/:id
func (h *MealPlanHandler) GetRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid recipe ID", nil)
	}

	recipe, err := h.mealPlanService.GetRecipe(id)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return NewNotFoundError(c, "Recipe not found")
		}
		log.Error().Err(err).Str("recipe_id", id.String()).Msg("Failed to get recipe")
		return NewInternalError(c, "Failed to get recipe")
	}

	return c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe handles PUT /api/v1/recipes/:id
func (h *MealPlanHandler) UpdateRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid recipe ID", nil)
	}

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	recipe, err := h.mealPlanService.UpdateRecipe(id, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return NewNotFoundError(c, "Recipe not found")
		}
		if isRecipeValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Str("recipe_id", id.String()).Msg("Failed to update recipe")
		return NewInternalError(c, "Failed to update recipe")
	}

	return c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /api/v1/recipes/:id
// Deleting a recipe also clears any meal plan slots using it.
func (h *MealPlanHandler) DeleteRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid recipe ID", nil)
	}

	if err := h.mealPlanService.DeleteRecipe(id); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return NewNotFoundError(c, "Recipe not found")
		}
		log.Error().Err(err).Str("recipe_id", id.String()).Msg("Failed to delete recipe")
		return NewInternalError(c, "Failed to delete recipe")
	}

	return c.NoContent(http.StatusNoContent)
}

// GetMealPlan handles GET /api/v1/meal-plan
func (h *MealPlanHandler) GetMealPlan(c echo.Context) error {
	assignments, err := h.mealPlanService.GetMealPlan()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get meal plan")
		return NewInternalError(c, "Failed to get meal plan")
	}

	return c.JSON(http.StatusOK, assignments)
}

// AssignMeal handles PUT /api/v1/meal-plan/:day/:meal
func (h *MealPlanHandler) AssignMeal(c echo.Context) error {
	day := c.Param("day")
	meal := domain.MealType(c.Param("meal"))

	var req AssignMealRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return NewValidationError(c, "Invalid recipe ID", nil)
	}

	assignment, err := h.mealPlanService.AssignMeal(day, meal, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrMealSlotInvalid) {
			return NewValidationError(c, err.Error(), nil)
		}
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return NewNotFoundError(c, "Recipe not found")
		}
		log.Error().Err(err).Str("day", day).Str("meal", string(meal)).Msg("Failed to assign meal")
		return NewInternalError(c, "Failed to assign meal")
	}

	return c.JSON(http.StatusOK, assignment)
}

// ClearSlot handles DELETE /api/v1/meal-plan/:day/:meal
func (h *MealPlanHandler) ClearSlot(c echo.Context) error {
	day := c.Param("day")
	meal := domain.MealType(c.Param("meal"))

	if err := h.mealPlanService.ClearSlot(day, meal); err != nil {
		if errors.Is(err, domain.ErrMealSlotInvalid) {
			return NewValidationError(c, err.Error(), nil)
		}
		if errors.Is(err, domain.ErrMealAssignmentNotFound) {
			return NewNotFoundError(c, "No recipe assigned to slot")
		}
		log.Error().Err(err).Str("day", day).Str("meal", string(meal)).Msg("Failed to clear meal slot")
		return NewInternalError(c, "Failed to clear meal slot")
	}

	return c.NoContent(http.StatusNoContent)
}

func isRecipeValidationError(err error) bool {
	return errors.Is(err, domain.ErrRecipeNameEmpty) ||
		errors.Is(err, domain.ErrRecipeNameTooLong)
}
