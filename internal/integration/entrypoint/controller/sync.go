package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	usecasesync "github.com/shop-khata/backend/internal/application/usecase/sync"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/integration/entrypoint/dto"
)

// maxImportBytes bounds the accepted state document size.
const maxImportBytes = 32 << 20

// SyncController handles export, import, and cloud backup endpoints.
type SyncController struct {
	exportUseCase  *usecasesync.ExportStateUseCase
	importUseCase  *usecasesync.ImportStateUseCase
	backupUseCase  *usecasesync.BackupUseCase
	restoreUseCase *usecasesync.RestoreUseCase
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(
	exportUseCase *usecasesync.ExportStateUseCase,
	importUseCase *usecasesync.ImportStateUseCase,
	backupUseCase *usecasesync.BackupUseCase,
	restoreUseCase *usecasesync.RestoreUseCase,
) *SyncController {
	return &SyncController{
		exportUseCase:  exportUseCase,
		importUseCase:  importUseCase,
		backupUseCase:  backupUseCase,
		restoreUseCase: restoreUseCase,
	}
}

// Export handles GET /sync/export requests, returning the full state as a
// downloadable JSON document.
func (c *SyncController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export state",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="shop-khata-export.json"`)
	ctx.Data(http.StatusOK, "application/json", output.JSON)
}

// Import handles POST /sync/import requests. The body is a previously
// exported state document; malformed records inside it are dropped, not
// fatal.
func (c *SyncController) Import(ctx *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxImportBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read request body",
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), usecasesync.ImportStateInput{JSON: raw})
	if err != nil {
		if errors.Is(err, domainerror.ErrMalformedStateDocument) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "State document is not valid JSON",
				Code:  string(domainerror.ErrCodeMalformedStateDocument),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to import state",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportResultResponse(output))
}

// Backup handles POST /sync/backup requests.
func (c *SyncController) Backup(ctx *gin.Context) {
	var req dto.BackupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.backupUseCase.Execute(ctx.Request.Context(), usecasesync.BackupInput{AccessToken: req.AccessToken})
	if err != nil {
		respondSyncError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BackupResponse{Bytes: output.Bytes})
}

// Restore handles POST /sync/restore requests.
func (c *SyncController) Restore(ctx *gin.Context) {
	var req dto.BackupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), usecasesync.RestoreInput{AccessToken: req.AccessToken})
	if err != nil {
		respondSyncError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportResultResponse(output))
}

// respondSyncError maps cloud sync failures to HTTP responses.
func respondSyncError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrBackupNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "No backup found",
			Code:  string(domainerror.ErrCodeBackupNotFound),
		})
	case errors.Is(err, domainerror.ErrDriveUnavailable):
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Cloud storage is unavailable",
			Code:  string(domainerror.ErrCodeDriveUnavailable),
		})
	case errors.Is(err, domainerror.ErrMalformedStateDocument):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Backup document is not valid JSON",
			Code:  string(domainerror.ErrCodeMalformedStateDocument),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to sync with cloud storage",
		})
	}
}
