package domain

// Validation constants
const (
	MaxRecipeNameLength = 200
)
