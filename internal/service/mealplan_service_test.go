package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/arvhie/payoff/payoff-backend/internal/testutil"
)

func newMealPlanService() (*MealPlanService, *testutil.MockRecipeRepository, *testutil.MockMealAssignmentRepository, *testutil.CapturingPublisher) {
	recipeRepo := testutil.NewMockRecipeRepository()
	assignmentRepo := testutil.NewMockMealAssignmentRepository()
	publisher := &testutil.CapturingPublisher{}
	svc := NewMealPlanService(recipeRepo, assignmentRepo)
	svc.SetEventPublisher(publisher)
	return svc, recipeRepo, assignmentRepo, publisher
}

func TestCreateRecipe(t *testing.T) {
	svc, _, _, publisher := newMealPlanService()

	description := "Slow cooked"
	recipe, err := svc.CreateRecipe("Beef rendang", &description)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if recipe.ID == uuid.Nil {
		t.Error("Expected recipe ID to be assigned")
	}
	if len(publisher.Events) != 1 || publisher.Events[0].Type != "recipe.created" {
		t.Errorf("Expected recipe.created event, got %v", publisher.Events)
	}
}

func TestCreateRecipe_EmptyName(t *testing.T) {
	svc, _, _, _ := newMealPlanService()

	_, err := svc.CreateRecipe("", nil)
	if err != domain.ErrRecipeNameEmpty {
		t.Errorf("Expected ErrRecipeNameEmpty, got %v", err)
	}
}

func TestCreateRecipe_NameTooLong(t *testing.T) {
	svc, _, _, _ := newMealPlanService()

	_, err := svc.CreateRecipe(strings.Repeat("x", 201), nil)
	if err != domain.ErrRecipeNameTooLong {
		t.Errorf("Expected ErrRecipeNameTooLong, got %v", err)
	}
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	svc, _, _, _ := newMealPlanService()

	_, err := svc.UpdateRecipe(uuid.New(), "Renamed", nil)
	if err != domain.ErrRecipeNotFound {
		t.Errorf("Expected ErrRecipeNotFound, got %v", err)
	}
}

func TestAssignMeal(t *testing.T) {
	svc, _, _, publisher := newMealPlanService()

	recipe, err := svc.CreateRecipe("Pancakes", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assignment, err := svc.AssignMeal("monday", domain.MealBreakfast, recipe.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if assignment.RecipeID != recipe.ID {
		t.Errorf("Expected recipe %s assigned, got %s", recipe.ID, assignment.RecipeID)
	}
	last := publisher.Events[len(publisher.Events)-1]
	if last.Type != "meal_assignment.updated" {
		t.Errorf("Expected meal_assignment.updated event, got %s", last.Type)
	}
}

func TestAssignMeal_InvalidSlot(t *testing.T) {
	svc, _, _, _ := newMealPlanService()

	_, err := svc.AssignMeal("someday", domain.MealBreakfast, uuid.New())
	if err != domain.ErrMealSlotInvalid {
		t.Errorf("Expected ErrMealSlotInvalid, got %v", err)
	}

	_, err = svc.AssignMeal("monday", domain.MealType("brunch"), uuid.New())
	if err != domain.ErrMealSlotInvalid {
		t.Errorf("Expected ErrMealSlotInvalid, got %v", err)
	}
}

func TestAssignMeal_UnknownRecipe(t *testing.T) {
	svc, _, _, _ := newMealPlanService()

	_, err := svc.AssignMeal("monday", domain.MealDinner, uuid.New())
	if err != domain.ErrRecipeNotFound {
		t.Errorf("Expected ErrRecipeNotFound, got %v", err)
	}
}

func TestAssignMeal_ReplacesSlot(t *testing.T) {
	svc, _, _, _ := newMealPlanService()

	first, _ := svc.CreateRecipe("Omelette", nil)
	second, _ := svc.CreateRecipe("Porridge", nil)

	if _, err := svc.AssignMeal("tuesday", domain.MealBreakfast, first.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := svc.AssignMeal("tuesday", domain.MealBreakfast, second.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assignment, err := svc.GetAssignment("tuesday", domain.MealBreakfast)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if assignment.RecipeID != second.ID {
		t.Errorf("Expected slot replaced with %s, got %s", second.ID, assignment.RecipeID)
	}

	plan, err := svc.GetMealPlan()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(plan) != 1 {
		t.Errorf("Expected 1 assignment, got %d", len(plan))
	}
}

func TestDeleteRecipe_ClearsAssignments(t *testing.T) {
	svc, _, assignmentRepo, _ := newMealPlanService()

	recipe, _ := svc.CreateRecipe("Laksa", nil)
	if _, err := svc.AssignMeal("friday", domain.MealLunch, recipe.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := svc.AssignMeal("saturday", domain.MealDinner, recipe.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := svc.DeleteRecipe(recipe.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	count, err := assignmentRepo.CountByRecipe(recipe.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no assignments left, got %d", count)
	}
	if _, err := svc.GetRecipe(recipe.ID); err != domain.ErrRecipeNotFound {
		t.Errorf("Expected ErrRecipeNotFound, got %v", err)
	}
}

func TestClearSlot_NotFound(t *testing.T) {
	svc, _, _, _ := newMealPlanService()

	err := svc.ClearSlot("wednesday", domain.MealDinner)
	if err != domain.ErrMealAssignmentNotFound {
		t.Errorf("Expected ErrMealAssignmentNotFound, got %v", err)
	}
}
