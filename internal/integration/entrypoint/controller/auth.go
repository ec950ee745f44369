package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-khata/backend/internal/application/usecase/auth"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/integration/entrypoint/dto"
)

// AuthController handles PIN login, token refresh, and PIN recovery
// endpoints.
type AuthController struct {
	loginUseCase    *auth.LoginUseCase
	refreshUseCase  *auth.RefreshUseCase
	startRecovery   *auth.StartRecoveryUseCase
	confirmRecovery *auth.ConfirmRecoveryUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.LoginUseCase,
	refreshUseCase *auth.RefreshUseCase,
	startRecovery *auth.StartRecoveryUseCase,
	confirmRecovery *auth.ConfirmRecoveryUseCase,
) *AuthController {
	return &AuthController{
		loginUseCase:    loginUseCase,
		refreshUseCase:  refreshUseCase,
		startRecovery:   startRecovery,
		confirmRecovery: confirmRecovery,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginInput{PIN: req.PIN})
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidPIN) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid PIN",
				Code:  string(domainerror.ErrCodeInvalidPIN),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to log in",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTokenResponse(output.Tokens))
}

// Refresh handles POST /auth/refresh requests.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.refreshUseCase.Execute(ctx.Request.Context(), auth.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid or expired refresh token",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTokenResponse(output.Tokens))
}

// StartRecovery handles POST /auth/recover requests, emailing a one-time
// code to the profile address.
func (c *AuthController) StartRecovery(ctx *gin.Context) {
	if err := c.startRecovery.Execute(ctx.Request.Context()); err != nil {
		if errors.Is(err, domainerror.ErrRecoveryUnavailable) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{
				Error: "PIN recovery is not available",
				Code:  string(domainerror.ErrCodeRecoveryUnavailable),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to start PIN recovery",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Recovery code sent"})
}

// ConfirmRecovery handles POST /auth/recover/confirm requests.
func (c *AuthController) ConfirmRecovery(ctx *gin.Context) {
	var req dto.ConfirmRecoveryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	err := c.confirmRecovery.Execute(ctx.Request.Context(), auth.ConfirmRecoveryInput{
		Code:   req.Code,
		NewPIN: req.NewPIN,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrInvalidRecoveryCode):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Recovery code is invalid or expired",
				Code:  string(domainerror.ErrCodeInvalidRecoveryCode),
			})
		case errors.Is(err, domainerror.ErrWeakPIN):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "New PIN does not meet minimum requirements",
				Code:  string(domainerror.ErrCodeWeakPIN),
			})
		default:
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to reset PIN",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "PIN reset"})
}
