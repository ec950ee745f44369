package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/usecase/closing"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
	"github.com/shop-khata/backend/internal/integration/entrypoint/dto"
)

// ClosingController handles night-closing endpoints.
type ClosingController struct {
	recordUseCase *closing.RecordEntryUseCase
	statusUseCase *closing.GetDayStatusUseCase
	deleteUseCase *closing.DeleteEntryUseCase
	resetUseCase  *closing.ResetDayUseCase
}

// NewClosingController creates a new closing controller instance.
func NewClosingController(
	recordUseCase *closing.RecordEntryUseCase,
	statusUseCase *closing.GetDayStatusUseCase,
	deleteUseCase *closing.DeleteEntryUseCase,
	resetUseCase *closing.ResetDayUseCase,
) *ClosingController {
	return &ClosingController{
		recordUseCase: recordUseCase,
		statusUseCase: statusUseCase,
		deleteUseCase: deleteUseCase,
		resetUseCase:  resetUseCase,
	}
}

// Record handles PUT /closing/:date/:category requests. Recording an
// already-filled slot replaces its amount.
func (c *ClosingController) Record(ctx *gin.Context) {
	day, ok := parseDayParam(ctx)
	if !ok {
		return
	}

	var req dto.RecordClosingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), closing.RecordEntryInput{
		Day:      day,
		Category: entity.ClosingCategory(ctx.Param("category")),
		Amount:   decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		var closingErr *domainerror.ClosingError
		if errors.As(err, &closingErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: closingErr.Message,
				Code:  string(closingErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to record closing slot",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClosingEntryResponse(output.Entry))
}

// Status handles GET /closing/:date requests.
func (c *ClosingController) Status(ctx *gin.Context) {
	day, ok := parseDayParam(ctx)
	if !ok {
		return
	}

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), closing.GetDayStatusInput{Day: day})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read closing status",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDayStatusResponse(output))
}

// Delete handles DELETE /closing/entries/:id requests.
func (c *ClosingController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), closing.DeleteEntryInput{ID: id}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete closing entry",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reset handles POST /closing/:date/reset requests.
func (c *ClosingController) Reset(ctx *gin.Context) {
	day, ok := parseDayParam(ctx)
	if !ok {
		return
	}

	if err := c.resetUseCase.Execute(ctx.Request.Context(), closing.ResetDayInput{Day: day}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to reset closing day",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Closing day reset"})
}

// parseDayParam parses the :date path parameter, writing a 400 response on
// bad input.
func parseDayParam(ctx *gin.Context) (valueobject.Day, bool) {
	day, err := valueobject.ParseDay(ctx.Param("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return "", false
	}
	return day, true
}
