package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-khata/backend/internal/application/usecase/ledger"
	"github.com/shop-khata/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the derived overview endpoints.
type DashboardController struct {
	overviewUseCase *ledger.GetOverviewUseCase
	monthlyUseCase  *ledger.GetMonthlySeriesUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	overviewUseCase *ledger.GetOverviewUseCase,
	monthlyUseCase *ledger.GetMonthlySeriesUseCase,
) *DashboardController {
	return &DashboardController{
		overviewUseCase: overviewUseCase,
		monthlyUseCase:  monthlyUseCase,
	}
}

// Overview handles GET /dashboard/overview requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	day, ok := parseOptionalDay(ctx, ctx.Query("date"))
	if !ok {
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), ledger.GetOverviewInput{Day: day})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute overview",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// MonthlySeries handles GET /dashboard/monthly requests.
func (c *DashboardController) MonthlySeries(ctx *gin.Context) {
	day, ok := parseOptionalDay(ctx, ctx.Query("date"))
	if !ok {
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), ledger.GetMonthlySeriesInput{Day: day})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly series",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(output))
}
