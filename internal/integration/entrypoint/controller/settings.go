package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/usecase/settings"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles shop settings endpoints.
type SettingsController struct {
	getUseCase       *settings.GetSettingsUseCase
	updateUseCase    *settings.UpdateSettingsUseCase
	changePINUseCase *settings.ChangePINUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	changePINUseCase *settings.ChangePINUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		changePINUseCase: changePINUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := settings.UpdateSettingsInput{
		DriveClientID: req.DriveClientID,
		AutoSync:      req.AutoSync,
		Language:      req.Language,
	}
	if req.OpeningCash != nil {
		openingCash := decimal.NewFromFloat(*req.OpeningCash)
		input.OpeningCash = &openingCash
	}
	if req.Profile != nil {
		input.Profile = &entity.UserProfile{
			Name:      req.Profile.Name,
			Email:     req.Profile.Email,
			AvatarURL: req.Profile.AvatarURL,
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// ChangePIN handles POST /settings/pin requests.
func (c *SettingsController) ChangePIN(ctx *gin.Context) {
	var req dto.ChangePINRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	err := c.changePINUseCase.Execute(ctx.Request.Context(), settings.ChangePINInput{
		CurrentPIN: req.CurrentPIN,
		NewPIN:     req.NewPIN,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrInvalidPIN):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Current PIN is incorrect",
				Code:  string(domainerror.ErrCodeInvalidPIN),
			})
		case errors.Is(err, domainerror.ErrWeakPIN):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "New PIN does not meet minimum requirements",
				Code:  string(domainerror.ErrCodeWeakPIN),
			})
		default:
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to change PIN",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "PIN changed"})
}
