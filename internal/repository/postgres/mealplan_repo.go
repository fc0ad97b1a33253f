package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
)

// RecipeRepository implements domain.RecipeRepository using the recipes table
type RecipeRepository struct {
	pool *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

// Create inserts a new recipe
func (r *RecipeRepository) Create(recipe *domain.Recipe) (*domain.Recipe, error) {
	ctx := context.Background()

	query := `
		INSERT INTO recipes (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, created_at, updated_at
	`
	created, err := scanRecipe(r.pool.QueryRow(ctx, query, recipe.ID, recipe.Name, recipe.Description))
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return created, nil
}

// GetByID retrieves a recipe by ID
func (r *RecipeRepository) GetByID(id uuid.UUID) (*domain.Recipe, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM recipes
		WHERE id = $1
	`
	recipe, err := scanRecipe(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return recipe, nil
}

// GetAll retrieves all recipes ordered by name
func (r *RecipeRepository) GetAll() ([]*domain.Recipe, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM recipes
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

// Update updates a recipe's name and description
func (r *RecipeRepository) Update(recipe *domain.Recipe) (*domain.Recipe, error) {
	ctx := context.Background()

	query := `
		UPDATE recipes
		SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, created_at, updated_at
	`
	updated, err := scanRecipe(r.pool.QueryRow(ctx, query, recipe.ID, recipe.Name, recipe.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return updated, nil
}

// Delete removes a recipe
func (r *RecipeRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func scanRecipe(s scannable) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := s.Scan(&recipe.ID, &recipe.Name, &recipe.Description, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// MealAssignmentRepository implements domain.MealAssignmentRepository using the meal_assignments table
type MealAssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewMealAssignmentRepository creates a new MealAssignmentRepository
func NewMealAssignmentRepository(pool *pgxpool.Pool) *MealAssignmentRepository {
	return &MealAssignmentRepository{pool: pool}
}

// Set inserts or replaces the assignment for a slot
func (r *MealAssignmentRepository) Set(assignment *domain.MealAssignment) (*domain.MealAssignment, error) {
	ctx := context.Background()

	query := `
		INSERT INTO meal_assignments (day, meal, recipe_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (day, meal) DO UPDATE SET
			recipe_id  = EXCLUDED.recipe_id,
			updated_at = NOW()
		RETURNING day, meal, recipe_id, updated_at
	`
	saved, err := scanMealAssignment(r.pool.QueryRow(ctx, query, assignment.Day, assignment.Meal, assignment.RecipeID))
	if err != nil {
		return nil, fmt.Errorf("set meal assignment: %w", err)
	}
	return saved, nil
}

// Get retrieves the assignment for a slot
func (r *MealAssignmentRepository) Get(day string, meal domain.MealType) (*domain.MealAssignment, error) {
	ctx := context.Background()

	query := `
		SELECT day, meal, recipe_id, updated_at
		FROM meal_assignments
		WHERE day = $1 AND meal = $2
	`
	assignment, err := scanMealAssignment(r.pool.QueryRow(ctx, query, day, meal))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMealAssignmentNotFound
		}
		return nil, fmt.Errorf("get meal assignment: %w", err)
	}
	return assignment, nil
}

// GetAll retrieves every current slot assignment
func (r *MealAssignmentRepository) GetAll() ([]*domain.MealAssignment, error) {
	ctx := context.Background()

	query := `
		SELECT day, meal, recipe_id, updated_at
		FROM meal_assignments
		ORDER BY day, meal
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query meal assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.MealAssignment
	for rows.Next() {
		assignment, err := scanMealAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}

// Clear removes the assignment from a slot
func (r *MealAssignmentRepository) Clear(day string, meal domain.MealType) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM meal_assignments WHERE day = $1 AND meal = $2`, day, meal)
	if err != nil {
		return fmt.Errorf("clear meal assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMealAssignmentNotFound
	}
	return nil
}

// CountByRecipe counts slots currently using a recipe
func (r *MealAssignmentRepository) CountByRecipe(recipeID uuid.UUID) (int64, error) {
	ctx := context.Background()

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM meal_assignments WHERE recipe_id = $1`, recipeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count meal assignments: %w", err)
	}
	return count, nil
}

// ClearByRecipe removes every assignment using a recipe and reports how many were cleared
func (r *MealAssignmentRepository) ClearByRecipe(recipeID uuid.UUID) (int64, error) {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM meal_assignments WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return 0, fmt.Errorf("clear meal assignments by recipe: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanMealAssignment(s scannable) (*domain.MealAssignment, error) {
	var assignment domain.MealAssignment
	err := s.Scan(&assignment.Day, &assignment.Meal, &assignment.RecipeID, &assignment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
