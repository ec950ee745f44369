package dto

import (
	"time"

	"github.com/shop-khata/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for recording income.
type CreateIncomeRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Date     string  `json:"date,omitempty"`
}

// CreateExpenseRequest represents the request body for recording an expense.
type CreateExpenseRequest struct {
	Name   string  `json:"name" binding:"required,min=1,max=255"`
	Amount float64 `json:"amount" binding:"required"`
	Date   string  `json:"date,omitempty"`
}

// CreateCashAdjustmentRequest represents the request body for a cash-box
// adjustment.
type CreateCashAdjustmentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Type   string  `json:"type" binding:"required,oneof=in out"`
	Note   string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	Date   string  `json:"date,omitempty"`
}

// IncomeResponse represents an income entry in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

// CashAdjustmentResponse represents a cash adjustment in API responses.
type CashAdjustmentResponse struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Type      string    `json:"type"`
	Note      string    `json:"note"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// ToIncomeResponse converts an income entry to its response form.
func ToIncomeResponse(entry *entity.IncomeEntry) IncomeResponse {
	return IncomeResponse{
		ID:        entry.ID.String(),
		Category:  string(entry.Category),
		Amount:    entry.Amount.String(),
		Date:      entry.Day.String(),
		CreatedAt: entry.CreatedAt,
	}
}

// ToIncomeListResponse converts income entries to their response form.
func ToIncomeListResponse(entries []*entity.IncomeEntry) []IncomeResponse {
	responses := make([]IncomeResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToIncomeResponse(e)
	}
	return responses
}

// ToExpenseResponse converts an expense to its response form.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:     expense.ID.String(),
		Name:   expense.Name,
		Amount: expense.Amount.String(),
		Date:   expense.Day.String(),
	}
}

// ToExpenseListResponse converts expenses to their response form.
func ToExpenseListResponse(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}

// ToCashAdjustmentResponse converts a cash adjustment to its response form.
func ToCashAdjustmentResponse(adjustment *entity.CashAdjustment) CashAdjustmentResponse {
	return CashAdjustmentResponse{
		ID:        adjustment.ID.String(),
		Amount:    adjustment.Amount.String(),
		Type:      string(adjustment.Direction),
		Note:      adjustment.Note,
		Date:      adjustment.Day.String(),
		CreatedAt: adjustment.CreatedAt,
	}
}

// ToCashAdjustmentListResponse converts cash adjustments to their response form.
func ToCashAdjustmentListResponse(adjustments []*entity.CashAdjustment) []CashAdjustmentResponse {
	responses := make([]CashAdjustmentResponse, len(adjustments))
	for i, a := range adjustments {
		responses[i] = ToCashAdjustmentResponse(a)
	}
	return responses
}
