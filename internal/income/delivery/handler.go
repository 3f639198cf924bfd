package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"balanceflow-backend/internal/income/usecase"
	"balanceflow-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// IncomeHandler handles income-related HTTP requests
type IncomeHandler struct {
	incomeUsecase usecase.IncomeUsecase
}

func NewIncomeHandler(incomeUsecase usecase.IncomeUsecase) *IncomeHandler {
	return &IncomeHandler{incomeUsecase: incomeUsecase}
}

// AddIncome creates a new income record for the authenticated user.
// POST /api/income
func (h *IncomeHandler) AddIncome(c *gin.Context) {
	userID := c.GetUint("userID")

	var req usecase.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title, amount, category and transaction date are required")
		return
	}

	if _, err := h.incomeUsecase.AddIncome(userID, &req); err != nil {
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

	response.Success(c, http.StatusCreated, "Income added successfully", nil)
}

// GetIncomes lists the user's incomes, newest transaction first.
// GET /api/income
func (h *IncomeHandler) GetIncomes(c *gin.Context) {
	userID := c.GetUint("userID")

	incomes, err := h.incomeUsecase.GetIncomes(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Incomes fetched successfully", incomes)
}

// UpdateIncome applies a partial update to one income record.
// PUT /api/income/:incomeId
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	userID := c.GetUint("userID")

	incomeID, err := strconv.ParseUint(c.Param("incomeId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Income ID is required")
		return
	}

	var req usecase.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.incomeUsecase.UpdateIncome(userID, uint(incomeID), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrIncomeNotFound):
			response.Error(c, http.StatusNotFound, "Income not found")
		case errors.Is(err, usecase.ErrInvalidAmount):
			response.Error(c, http.StatusBadRequest, "Amount must be greater than zero")
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "Invalid transaction date")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Success(c, http.StatusOK, "Income updated successfully", nil)
}

// DeleteIncome removes one income record owned by the user.
// DELETE /api/income/:incomeId
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID := c.GetUint("userID")

	incomeID, err := strconv.ParseUint(c.Param("incomeId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Income ID is required")
		return
	}

	if err := h.incomeUsecase.DeleteIncome(userID, uint(incomeID)); err != nil {
		if errors.Is(err, usecase.ErrIncomeNotFound) {
			response.Error(c, http.StatusNotFound, "Income not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Income deleted successfully", nil)
}
