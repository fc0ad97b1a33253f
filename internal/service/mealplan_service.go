package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/arvhie/payoff/payoff-backend/internal/websocket"
)

// MealPlanService handles recipe and weekly meal plan business logic
type MealPlanService struct {
	recipeRepo     domain.RecipeRepository
	assignmentRepo domain.MealAssignmentRepository
	eventPublisher websocket.EventPublisher
}

// NewMealPlanService creates a new MealPlanService
func NewMealPlanService(recipeRepo domain.RecipeRepository, assignmentRepo domain.MealAssignmentRepository) *MealPlanService {
	return &MealPlanService{
		recipeRepo:     recipeRepo,
		assignmentRepo: assignmentRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *MealPlanService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *MealPlanService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateRecipe validates and stores a new recipe
func (s *MealPlanService) CreateRecipe(name string, description *string) (*domain.Recipe, error) {
	recipe := &domain.Recipe{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	created, err := s.recipeRepo.Create(recipe)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.RecipeCreated(created))

	return created, nil
}

// GetRecipe retrieves a recipe by ID
func (s *MealPlanService) GetRecipe(id uuid.UUID) (*domain.Recipe, error) {
	return s.recipeRepo.GetByID(id)
}

// GetRecipes retrieves all recipes ordered by name
func (s *MealPlanService) GetRecipes() ([]*domain.Recipe, error) {
	return s.recipeRepo.GetAll()
}

// UpdateRecipe updates an existing recipe's name and description
func (s *MealPlanService) UpdateRecipe(id uuid.UUID, name string, description *string) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	recipe.Name = name
	recipe.Description = description
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.recipeRepo.Update(recipe)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.RecipeUpdated(updated))

	return updated, nil
}

// DeleteRecipe removes a recipe and clears any slots it was assigned to
func (s *MealPlanService) DeleteRecipe(id uuid.UUID) error {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return err
	}

	cleared, err := s.assignmentRepo.ClearByRecipe(id)
	if err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent(websocket.RecipeDeleted(recipe))
	if cleared > 0 {
		s.publishEvent(websocket.MealAssignmentCleared(map[string]interface{}{
			"recipeId": id,
		}))
	}

	return nil
}

// AssignMeal places a recipe on a weekday/meal slot, replacing any
// previous assignment on that slot
func (s *MealPlanService) AssignMeal(day string, meal domain.MealType, recipeID uuid.UUID) (*domain.MealAssignment, error) {
	if !domain.ValidSlot(day, meal) {
		return nil, domain.ErrMealSlotInvalid
	}

	// Verify the recipe exists
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		return nil, err
	}

	assignment := &domain.MealAssignment{
		Day:       day,
		Meal:      meal,
		RecipeID:  recipeID,
		UpdatedAt: time.Now(),
	}

	saved, err := s.assignmentRepo.Set(assignment)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.MealAssignmentUpdated(saved))

	return saved, nil
}

// GetAssignment retrieves the assignment for a single slot
func (s *MealPlanService) GetAssignment(day string, meal domain.MealType) (*domain.MealAssignment, error) {
	if !domain.ValidSlot(day, meal) {
		return nil, domain.ErrMealSlotInvalid
	}
	return s.assignmentRepo.Get(day, meal)
}

// GetMealPlan retrieves all current slot assignments
func (s *MealPlanService) GetMealPlan() ([]*domain.MealAssignment, error) {
	return s.assignmentRepo.GetAll()
}

// ClearSlot removes the assignment from a weekday/meal slot
func (s *MealPlanService) ClearSlot(day string, meal domain.MealType) error {
	if !domain.ValidSlot(day, meal) {
		return domain.ErrMealSlotInvalid
	}

	if err := s.assignmentRepo.Clear(day, meal); err != nil {
		return err
	}

	s.publishEvent(websocket.MealAssignmentCleared(map[string]interface{}{
		"day":  day,
		"meal": meal,
	}))

	return nil
}
