package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRecipeNotFound         = errors.New("recipe not found")
	ErrRecipeNameEmpty        = errors.New("recipe name is required")
	ErrRecipeNameTooLong      = errors.New("recipe name must be 200 characters or less")
	ErrMealSlotInvalid        = errors.New("invalid meal plan slot")
	ErrMealAssignmentNotFound = errors.New("no recipe assigned to slot")
)

// Weekday values accepted by the meal plan grid, Monday first.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// MealType identifies a row of the meal plan grid.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// Recipe is a user-defined dish that can be placed on the weekly grid.
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r *Recipe) Validate() error {
	if r.Name == "" {
		return ErrRecipeNameEmpty
	}
	if len(r.Name) > MaxRecipeNameLength {
		return ErrRecipeNameTooLong
	}
	return nil
}

// MealAssignment pins a recipe to one weekday/meal slot. At most one
// assignment exists per slot; assigning again replaces the previous one.
type MealAssignment struct {
	Day       string    `json:"day"`
	Meal      MealType  `json:"meal"`
	RecipeID  uuid.UUID `json:"recipeId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidSlot reports whether day/meal name a cell of the weekly grid.
func ValidSlot(day string, meal MealType) bool {
	switch meal {
	case MealBreakfast, MealLunch, MealDinner:
	default:
		return false
	}
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

type RecipeRepository interface {
	Create(recipe *Recipe) (*Recipe, error)
	GetByID(id uuid.UUID) (*Recipe, error)
	GetAll() ([]*Recipe, error)
	Update(recipe *Recipe) (*Recipe, error)
	Delete(id uuid.UUID) error
}

type MealAssignmentRepository interface {
	Set(assignment *MealAssignment) (*MealAssignment, error)
	Get(day string, meal MealType) (*MealAssignment, error)
	GetAll() ([]*MealAssignment, error)
	Clear(day string, meal MealType) error
	CountByRecipe(recipeID uuid.UUID) (int64, error)
	ClearByRecipe(recipeID uuid.UUID) (int64, error)
}
