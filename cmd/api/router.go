package api

import (
	"net/http"

	"balanceflow-backend/internal/auth/delivery"
	authUsecase "balanceflow-backend/internal/auth/usecase"
	expenseDelivery "balanceflow-backend/internal/expense/delivery"
	expenseUsecase "balanceflow-backend/internal/expense/usecase"
	incomeDelivery "balanceflow-backend/internal/income/delivery"
	incomeUsecase "balanceflow-backend/internal/income/usecase"
	taskDelivery "balanceflow-backend/internal/task/delivery"
	taskUsecase "balanceflow-backend/internal/task/usecase"
	"balanceflow-backend/pkg/response"
	"balanceflow-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, expenseUc expenseUsecase.ExpenseUsecase, incomeUc incomeUsecase.IncomeUsecase, taskUc taskUsecase.TaskUsecase, tokens *token.Issuer) {
	authHandler := delivery.NewAuthHandler(authUc)
	expenseHandler := expenseDelivery.NewExpenseHandler(expenseUc)
	incomeHandler := incomeDelivery.NewIncomeHandler(incomeUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	requireAuth := delivery.AuthMiddleware(tokens)

	// Health check (no auth required)
	r.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "API running", nil)
	})

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/verify-otp", authHandler.VerifyOTP)
			auth.POST("/resend-otp", authHandler.ResendOTP)

			auth.POST("/login", authHandler.Login)
			auth.POST("/google-login", authHandler.GoogleLogin)

			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.POST("/change-password", requireAuth, authHandler.ChangePassword)

			auth.GET("/me", requireAuth, authHandler.Me)
		}

		expense := api.Group("/expense")
		expense.Use(requireAuth)
		{
			expense.POST("", expenseHandler.AddExpense)
			expense.GET("", expenseHandler.GetExpenses)
			expense.PUT("/:expenseId", expenseHandler.UpdateExpense)
			expense.DELETE("/:expenseId", expenseHandler.DeleteExpense)
		}

		income := api.Group("/income")
		income.Use(requireAuth)
		{
			income.POST("", incomeHandler.AddIncome)
			income.GET("", incomeHandler.GetIncomes)
			income.PUT("/:incomeId", incomeHandler.UpdateIncome)
			income.DELETE("/:incomeId", incomeHandler.DeleteIncome)
		}

		task := api.Group("/task")
		task.Use(requireAuth)
		{
			task.POST("", taskHandler.AddTask)
			task.GET("", taskHandler.GetTasks)
			task.PUT("/:taskId", taskHandler.UpdateTask)
			task.PATCH("/:taskId/status", taskHandler.ToggleTaskStatus)
			task.DELETE("/:taskId", taskHandler.DeleteTask)
		}
	}
}
