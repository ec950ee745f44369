package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-khata/backend/internal/application/usecase/advice"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/integration/entrypoint/dto"
)

// AdviceController handles the AI business advice endpoint.
type AdviceController struct {
	adviceUseCase *advice.GetAdviceUseCase
}

// NewAdviceController creates a new advice controller instance.
func NewAdviceController(adviceUseCase *advice.GetAdviceUseCase) *AdviceController {
	return &AdviceController{adviceUseCase: adviceUseCase}
}

// Get handles GET /advice requests.
func (c *AdviceController) Get(ctx *gin.Context) {
	output, err := c.adviceUseCase.Execute(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, domainerror.ErrAdviceUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "Advice service is not configured",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate advice",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.AdviceResponse{Advice: output.Advice})
}
