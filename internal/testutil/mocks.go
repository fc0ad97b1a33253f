package testutil

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/arvhie/payoff/payoff-backend/internal/websocket"
)

// MockPaymentRecordRepository is a mock implementation of domain.PaymentRecordRepository
type MockPaymentRecordRepository struct {
	Records  map[int32]*domain.PaymentRecord
	UpsertFn func(record *domain.PaymentRecord) (*domain.PaymentRecord, error)
}

// NewMockPaymentRecordRepository creates a new MockPaymentRecordRepository
func NewMockPaymentRecordRepository() *MockPaymentRecordRepository {
	return &MockPaymentRecordRepository{
		Records: make(map[int32]*domain.PaymentRecord),
	}
}

// Upsert inserts or replaces the record for a month
func (m *MockPaymentRecordRepository) Upsert(record *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(record)
	}
	now := time.Now()
	if existing, ok := m.Records[record.Month]; ok {
		record.CreatedAt = existing.CreatedAt
	} else {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	m.Records[record.Month] = record
	return record, nil
}

// GetByMonth retrieves the record for a month
func (m *MockPaymentRecordRepository) GetByMonth(month int32) (*domain.PaymentRecord, error) {
	if record, ok := m.Records[month]; ok {
		return record, nil
	}
	return nil, domain.ErrPaymentRecordNotFound
}

// GetAll retrieves all records ordered by month
func (m *MockPaymentRecordRepository) GetAll() ([]*domain.PaymentRecord, error) {
	records := make([]*domain.PaymentRecord, 0, len(m.Records))
	for _, record := range m.Records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Month < records[j].Month })
	return records, nil
}

// Delete removes the record for a month
func (m *MockPaymentRecordRepository) Delete(month int32) error {
	if _, ok := m.Records[month]; !ok {
		return domain.ErrPaymentRecordNotFound
	}
	delete(m.Records, month)
	return nil
}

// DeleteAll removes every record
func (m *MockPaymentRecordRepository) DeleteAll() error {
	m.Records = make(map[int32]*domain.PaymentRecord)
	return nil
}

// MockRecipeRepository is a mock implementation of domain.RecipeRepository
type MockRecipeRepository struct {
	Recipes map[uuid.UUID]*domain.Recipe
}

// NewMockRecipeRepository creates a new MockRecipeRepository
func NewMockRecipeRepository() *MockRecipeRepository {
	return &MockRecipeRepository{
		Recipes: make(map[uuid.UUID]*domain.Recipe),
	}
}

// Create inserts a new recipe
func (m *MockRecipeRepository) Create(recipe *domain.Recipe) (*domain.Recipe, error) {
	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	m.Recipes[recipe.ID] = recipe
	return recipe, nil
}

// GetByID retrieves a recipe by ID
func (m *MockRecipeRepository) GetByID(id uuid.UUID) (*domain.Recipe, error) {
	if recipe, ok := m.Recipes[id]; ok {
		return recipe, nil
	}
	return nil, domain.ErrRecipeNotFound
}

// GetAll retrieves all recipes ordered by name
func (m *MockRecipeRepository) GetAll() ([]*domain.Recipe, error) {
	recipes := make([]*domain.Recipe, 0, len(m.Recipes))
	for _, recipe := range m.Recipes {
		recipes = append(recipes, recipe)
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].Name < recipes[j].Name })
	return recipes, nil
}

// Update updates an existing recipe
func (m *MockRecipeRepository) Update(recipe *domain.Recipe) (*domain.Recipe, error) {
	if _, ok := m.Recipes[recipe.ID]; !ok {
		return nil, domain.ErrRecipeNotFound
	}
	recipe.UpdatedAt = time.Now()
	m.Recipes[recipe.ID] = recipe
	return recipe, nil
}

// Delete removes a recipe
func (m *MockRecipeRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Recipes[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(m.Recipes, id)
	return nil
}

type mealSlot struct {
	Day  string
	Meal domain.MealType
}

// MockMealAssignmentRepository is a mock implementation of domain.MealAssignmentRepository
type MockMealAssignmentRepository struct {
	Assignments map[mealSlot]*domain.MealAssignment
}

// NewMockMealAssignmentRepository creates a new MockMealAssignmentRepository
func NewMockMealAssignmentRepository() *MockMealAssignmentRepository {
	return &MockMealAssignmentRepository{
		Assignments: make(map[mealSlot]*domain.MealAssignment),
	}
}

// Set inserts or replaces the assignment for a slot
func (m *MockMealAssignmentRepository) Set(assignment *domain.MealAssignment) (*domain.MealAssignment, error) {
	assignment.UpdatedAt = time.Now()
	m.Assignments[mealSlot{assignment.Day, assignment.Meal}] = assignment
	return assignment, nil
}

// Get retrieves the assignment for a slot
func (m *MockMealAssignmentRepository) Get(day string, meal domain.MealType) (*domain.MealAssignment, error) {
	if assignment, ok := m.Assignments[mealSlot{day, meal}]; ok {
		return assignment, nil
	}
	return nil, domain.ErrMealAssignmentNotFound
}

// GetAll retrieves every current assignment
func (m *MockMealAssignmentRepository) GetAll() ([]*domain.MealAssignment, error) {
	assignments := make([]*domain.MealAssignment, 0, len(m.Assignments))
	for _, assignment := range m.Assignments {
		assignments = append(assignments, assignment)
	}
	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].Day != assignments[j].Day {
			return assignments[i].Day < assignments[j].Day
		}
		return assignments[i].Meal < assignments[j].Meal
	})
	return assignments, nil
}

// Clear removes the assignment from a slot
func (m *MockMealAssignmentRepository) Clear(day string, meal domain.MealType) error {
	slot := mealSlot{day, meal}
	if _, ok := m.Assignments[slot]; !ok {
		return domain.ErrMealAssignmentNotFound
	}
	delete(m.Assignments, slot)
	return nil
}

// CountByRecipe counts slots using a recipe
func (m *MockMealAssignmentRepository) CountByRecipe(recipeID uuid.UUID) (int64, error) {
	var count int64
	for _, assignment := range m.Assignments {
		if assignment.RecipeID == recipeID {
			count++
		}
	}
	return count, nil
}

// ClearByRecipe removes every assignment using a recipe
func (m *MockMealAssignmentRepository) ClearByRecipe(recipeID uuid.UUID) (int64, error) {
	var cleared int64
	for slot, assignment := range m.Assignments {
		if assignment.RecipeID == recipeID {
			delete(m.Assignments, slot)
			cleared++
		}
	}
	return cleared, nil
}

// MockScheduleCache is an in-memory implementation of service.ScheduleCache
type MockScheduleCache struct {
	Store  map[string]string
	Gets   int
	Hits   int
	Sets   int
	SetErr error
}

// NewMockScheduleCache creates a new MockScheduleCache
func NewMockScheduleCache() *MockScheduleCache {
	return &MockScheduleCache{
		Store: make(map[string]string),
	}
}

// Get retrieves a cached value
func (m *MockScheduleCache) Get(key string) (string, bool) {
	m.Gets++
	val, ok := m.Store[key]
	if ok {
		m.Hits++
	}
	return val, ok
}

// Set stores a value
func (m *MockScheduleCache) Set(key string, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Sets++
	m.Store[key] = value
	return nil
}

// CapturingPublisher records published WebSocket events for assertions
type CapturingPublisher struct {
	Events []websocket.Event
}

// Publish records the event
func (p *CapturingPublisher) Publish(event websocket.Event) {
	p.Events = append(p.Events, event)
}
