package api

import (
	authUsecase "balanceflow-backend/internal/auth/usecase"
	expenseUsecase "balanceflow-backend/internal/expense/usecase"
	incomeUsecase "balanceflow-backend/internal/income/usecase"
	taskUsecase "balanceflow-backend/internal/task/usecase"
	"balanceflow-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	expenseUsecase expenseUsecase.ExpenseUsecase
	incomeUsecase  incomeUsecase.IncomeUsecase
	taskUsecase    taskUsecase.TaskUsecase
	tokens         *token.Issuer
}

func NewHandler(authUc authUsecase.AuthUsecase, expenseUc expenseUsecase.ExpenseUsecase, incomeUc incomeUsecase.IncomeUsecase, taskUc taskUsecase.TaskUsecase, tokens *token.Issuer) *Handler {
	return &Handler{
		authUsecase:    authUc,
		expenseUsecase: expenseUc,
		incomeUsecase:  incomeUc,
		taskUsecase:    taskUc,
		tokens:         tokens,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.expenseUsecase, h.incomeUsecase, h.taskUsecase, h.tokens)

	return r.Run(addr)
}
