package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/application/usecase/ledger"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
	"github.com/shop-khata/backend/internal/integration/entrypoint/dto"
)

// LedgerController handles income, expense, and cash adjustment endpoints.
type LedgerController struct {
	addIncomeUseCase  *ledger.AddIncomeUseCase
	addExpenseUseCase *ledger.AddExpenseUseCase
	addCashUseCase    *ledger.AddCashAdjustmentUseCase
	deleteUseCase     *ledger.DeleteEntryUseCase
	incomeRepo        adapter.IncomeRepository
	expenseRepo       adapter.ExpenseRepository
	cashRepo          adapter.CashAdjustmentRepository
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	addIncomeUseCase *ledger.AddIncomeUseCase,
	addExpenseUseCase *ledger.AddExpenseUseCase,
	addCashUseCase *ledger.AddCashAdjustmentUseCase,
	deleteUseCase *ledger.DeleteEntryUseCase,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	cashRepo adapter.CashAdjustmentRepository,
) *LedgerController {
	return &LedgerController{
		addIncomeUseCase:  addIncomeUseCase,
		addExpenseUseCase: addExpenseUseCase,
		addCashUseCase:    addCashUseCase,
		deleteUseCase:     deleteUseCase,
		incomeRepo:        incomeRepo,
		expenseRepo:       expenseRepo,
		cashRepo:          cashRepo,
	}
}

// CreateIncome handles POST /income requests.
func (c *LedgerController) CreateIncome(ctx *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	day, ok := parseOptionalDay(ctx, req.Date)
	if !ok {
		return
	}

	output, err := c.addIncomeUseCase.Execute(ctx.Request.Context(), ledger.AddIncomeInput{
		Category: entity.IncomeCategory(req.Category),
		Amount:   decimal.NewFromFloat(req.Amount),
		Day:      day,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Entry))
}

// ListIncome handles GET /income requests. An optional date query filters
// to one day.
func (c *LedgerController) ListIncome(ctx *gin.Context) {
	var (
		entries []*entity.IncomeEntry
		err     error
	)

	if dateStr := ctx.Query("date"); dateStr != "" {
		day, parseErr := valueobject.ParseDay(dateStr)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		entries, err = c.incomeRepo.ListOnDay(ctx.Request.Context(), day)
	} else {
		entries, err = c.incomeRepo.ListAll(ctx.Request.Context())
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve income entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(entries))
}

// DeleteIncome handles DELETE /income/:id requests.
func (c *LedgerController) DeleteIncome(ctx *gin.Context) {
	c.deleteEntry(ctx, ledger.KindIncome)
}

// CreateExpense handles POST /expenses requests.
func (c *LedgerController) CreateExpense(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	day, ok := parseOptionalDay(ctx, req.Date)
	if !ok {
		return
	}

	output, err := c.addExpenseUseCase.Execute(ctx.Request.Context(), ledger.AddExpenseInput{
		Name:   req.Name,
		Amount: decimal.NewFromFloat(req.Amount),
		Day:    day,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// ListExpenses handles GET /expenses requests.
func (c *LedgerController) ListExpenses(ctx *gin.Context) {
	var (
		expenses []*entity.Expense
		err      error
	)

	if dateStr := ctx.Query("date"); dateStr != "" {
		day, parseErr := valueobject.ParseDay(dateStr)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		expenses, err = c.expenseRepo.ListOnDay(ctx.Request.Context(), day)
	} else {
		expenses, err = c.expenseRepo.ListAll(ctx.Request.Context())
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// DeleteExpense handles DELETE /expenses/:id requests.
func (c *LedgerController) DeleteExpense(ctx *gin.Context) {
	c.deleteEntry(ctx, ledger.KindExpense)
}

// CreateCashAdjustment handles POST /cash-adjustments requests.
func (c *LedgerController) CreateCashAdjustment(ctx *gin.Context) {
	var req dto.CreateCashAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	day, ok := parseOptionalDay(ctx, req.Date)
	if !ok {
		return
	}

	output, err := c.addCashUseCase.Execute(ctx.Request.Context(), ledger.AddCashAdjustmentInput{
		Amount:    decimal.NewFromFloat(req.Amount),
		Direction: entity.CashDirection(req.Type),
		Note:      req.Note,
		Day:       day,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCashAdjustmentResponse(output.Adjustment))
}

// ListCashAdjustments handles GET /cash-adjustments requests.
func (c *LedgerController) ListCashAdjustments(ctx *gin.Context) {
	adjustments, err := c.cashRepo.ListAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve cash adjustments",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashAdjustmentListResponse(adjustments))
}

// DeleteCashAdjustment handles DELETE /cash-adjustments/:id requests.
func (c *LedgerController) DeleteCashAdjustment(ctx *gin.Context) {
	c.deleteEntry(ctx, ledger.KindCashAdjustment)
}

// deleteEntry runs the shared delete use case for one entry kind.
func (c *LedgerController) deleteEntry(ctx *gin.Context, kind ledger.EntryKind) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteEntryInput{Kind: kind, ID: id}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete entry",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseOptionalDay parses an optional date string, writing a 400 response
// on bad input. The empty string passes through as the zero Day, which the
// use cases default to today.
func parseOptionalDay(ctx *gin.Context, dateStr string) (valueobject.Day, bool) {
	if dateStr == "" {
		return "", true
	}
	day, err := valueobject.ParseDay(dateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return "", false
	}
	return day, true
}

// respondLedgerError maps ledger validation failures to HTTP responses.
// Persistence failures stay 500s.
func respondLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) && ledgerErr.Code != domainerror.ErrCodePersistence {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to record entry",
	})
}
