package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-khata/backend/internal/application/usecase/report"
	"github.com/shop-khata/backend/internal/integration/entrypoint/dto"
)

// ReportController handles daily report endpoints.
type ReportController struct {
	dailyUseCase        *report.GetDailyReportUseCase
	markUploadedUseCase *report.MarkUploadedUseCase
	listUploadedUseCase *report.ListUploadedDaysUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dailyUseCase *report.GetDailyReportUseCase,
	markUploadedUseCase *report.MarkUploadedUseCase,
	listUploadedUseCase *report.ListUploadedDaysUseCase,
) *ReportController {
	return &ReportController{
		dailyUseCase:        dailyUseCase,
		markUploadedUseCase: markUploadedUseCase,
		listUploadedUseCase: listUploadedUseCase,
	}
}

// Daily handles GET /reports/:date requests.
func (c *ReportController) Daily(ctx *gin.Context) {
	day, ok := parseDayParam(ctx)
	if !ok {
		return
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), report.GetDailyReportInput{Day: day})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build daily report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyReportResponse(output))
}

// MarkUploaded handles POST /reports/:date/uploaded requests.
func (c *ReportController) MarkUploaded(ctx *gin.Context) {
	day, ok := parseDayParam(ctx)
	if !ok {
		return
	}

	if err := c.markUploadedUseCase.Execute(ctx.Request.Context(), report.MarkUploadedInput{Day: day}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to mark report uploaded",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Report marked uploaded"})
}

// ListUploaded handles GET /reports/uploaded requests.
func (c *ReportController) ListUploaded(ctx *gin.Context) {
	output, err := c.listUploadedUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list uploaded dates",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUploadedDaysResponse(output))
}
