package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, loanHandler *LoanHandler, ledgerHandler *LedgerHandler, mealPlanHandler *MealPlanHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Loan computation routes
	loan := api.Group("/loan")
	loan.POST("/emi", loanHandler.ComputeEmi)
	loan.POST("/schedule", loanHandler.BuildSchedule)
	loan.POST("/metrics", loanHandler.ComputeMetrics)

	// Payment ledger routes
	payments := api.Group("/payments")
	payments.GET("", ledgerHandler.GetRecords)
	payments.DELETE("", ledgerHandler.ClearRecords)
	payments.GET("/:month", ledgerHandler.GetRecord)
	payments.PUT("/:month", ledgerHandler.UpsertRecord)
	payments.DELETE("/:month", ledgerHandler.DeleteRecord)

	// Recipe routes
	recipes := api.Group("/recipes")
	recipes.POST("", mealPlanHandler.CreateRecipe)
	recipes.GET("", mealPlanHandler.GetRecipes)
	recipes.GET("/:id", mealPlanHandler.GetRecipe)
	recipes.PUT("/:id", mealPlanHandler.UpdateRecipe)
	recipes.DELETE("/:id", mealPlanHandler.DeleteRecipe)

	// Meal plan routes
	mealPlan := api.Group("/meal-plan")
	mealPlan.GET("", mealPlanHandler.GetMealPlan)
	mealPlan.PUT("/:day/:meal", mealPlanHandler.AssignMeal)
	mealPlan.DELETE("/:day/:meal", mealPlanHandler.ClearSlot)

	// WebSocket endpoint for real-time updates
	e.GET("/ws", wsHandler.HandleWS)
}
