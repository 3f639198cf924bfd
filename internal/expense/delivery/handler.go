package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"balanceflow-backend/internal/expense/usecase"
	"balanceflow-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseUsecase usecase.ExpenseUsecase
}

func NewExpenseHandler(expenseUsecase usecase.ExpenseUsecase) *ExpenseHandler {
	return &ExpenseHandler{expenseUsecase: expenseUsecase}
}

// AddExpense creates a new expense for the authenticated user.
// POST /api/expense
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	userID := c.GetUint("userID")

	var req usecase.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title, amount, category and transaction date are required")
		return
	}

	if _, err := h.expenseUsecase.AddExpense(userID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAmount):
			response.Error(c, http.StatusBadRequest, "Amount must be greater than zero")
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "Invalid transaction date")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, "Expense added successfully", nil)
}

// GetExpenses lists the user's expenses, newest transaction first.
// GET /api/expense
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID := c.GetUint("userID")

	expenses, err := h.expenseUsecase.GetExpenses(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Expenses fetched successfully", expenses)
}

// UpdateExpense applies a partial update to one expense.
// PUT /api/expense/:expenseId
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID := c.GetUint("userID")

	expenseID, err := strconv.ParseUint(c.Param("expenseId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Expense ID is required")
		return
	}

	var req usecase.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.expenseUsecase.UpdateExpense(userID, uint(expenseID), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrExpenseNotFound):
			response.Error(c, http.StatusNotFound, "Expense not found")
		case errors.Is(err, usecase.ErrInvalidAmount):
			response.Error(c, http.StatusBadRequest, "Amount must be greater than zero")
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "Invalid transaction date")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Success(c, http.StatusOK, "Expense updated successfully", nil)
}

// DeleteExpense removes one expense owned by the user.
// DELETE /api/expense/:expenseId
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID := c.GetUint("userID")

	expenseID, err := strconv.ParseUint(c.Param("expenseId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Expense ID is required")
		return
	}

	if err := h.expenseUsecase.DeleteExpense(userID, uint(expenseID)); err != nil {
		if errors.Is(err, usecase.ErrExpenseNotFound) {
			response.Error(c, http.StatusNotFound, "Expense not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Expense deleted successfully", nil)
}
