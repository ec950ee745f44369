package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/application/usecase/due"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/integration/entrypoint/dto"
)

// DueController handles customer due endpoints.
type DueController struct {
	createUseCase  *due.CreateDueUseCase
	collectUseCase *due.CollectDueUseCase
	deleteUseCase  *due.DeleteDueUseCase
	updateUseCase  *due.UpdateDueUseCase
	listUseCase    *due.ListDuesUseCase
}

// NewDueController creates a new due controller instance.
func NewDueController(
	createUseCase *due.CreateDueUseCase,
	collectUseCase *due.CollectDueUseCase,
	deleteUseCase *due.DeleteDueUseCase,
	updateUseCase *due.UpdateDueUseCase,
	listUseCase *due.ListDuesUseCase,
) *DueController {
	return &DueController{
		createUseCase:  createUseCase,
		collectUseCase: collectUseCase,
		deleteUseCase:  deleteUseCase,
		updateUseCase:  updateUseCase,
		listUseCase:    listUseCase,
	}
}

// List handles GET /dues requests. Query parameters: paid=true lists the
// collected history, search filters by customer name or phone.
func (c *DueController) List(ctx *gin.Context) {
	input := due.ListDuesInput{
		Paid:   ctx.Query("paid") == "true",
		Search: ctx.Query("search"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve dues",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDueListResponse(output))
}

// Create handles POST /dues requests.
func (c *DueController) Create(ctx *gin.Context) {
	var req dto.CreateDueRequest
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), due.CreateDueInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Amount:       decimal.NewFromFloat(req.Amount),
		Note:         req.Note,
		PhotoRef:     req.PhotoRef,
		Day:          day,
	})
	if err != nil {
		respondDueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDueResponse(output.Due))
}

// Update handles PATCH /dues/:id requests.
func (c *DueController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due ID",
		})
		return
	}

	var req dto.UpdateDueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	update := adapter.DueUpdate{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Note:         req.Note,
		PhotoRef:     req.PhotoRef,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		update.Amount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), due.UpdateDueInput{ID: id, Update: update})
	if err != nil {
		respondDueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDueResponse(output.Due))
}

// Collect handles POST /dues/:id/collect requests. The paid flag and the
// matching income entry commit together.
func (c *DueController) Collect(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due ID",
		})
		return
	}

	output, err := c.collectUseCase.Execute(ctx.Request.Context(), due.CollectDueInput{ID: id})
	if err != nil {
		respondDueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDueResponse(output.Due))
}

// Delete handles DELETE /dues/:id requests. Only collected dues can be
// removed.
func (c *DueController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due ID",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), due.DeleteDueInput{ID: id}); err != nil {
		respondDueError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// respondDueError maps due lifecycle failures to HTTP responses.
func respondDueError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrDueNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Due not found",
			Code:  string(domainerror.ErrCodeDueNotFound),
		})
	case errors.Is(err, domainerror.ErrDueAlreadyCollected):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Due is already collected",
			Code:  string(domainerror.ErrCodeDueAlreadyCollected),
		})
	case errors.Is(err, domainerror.ErrDueNotCollected):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Only collected dues can be deleted",
			Code:  string(domainerror.ErrCodeDueNotCollected),
		})
	default:
		var dueErr *domainerror.DueError
		if errors.As(err, &dueErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: dueErr.Message,
				Code:  string(dueErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process due",
		})
	}
}
