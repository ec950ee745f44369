package dto

import (
	usecasesync "github.com/shop-khata/backend/internal/application/usecase/sync"
)

// BackupRequest represents the request body for a cloud backup or restore.
type BackupRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// ImportResultResponse reports what an import or restore did.
type ImportResultResponse struct {
	Imported ImportCountsResponse `json:"imported"`
	Dropped  ImportCountsResponse `json:"dropped"`
}

// ImportCountsResponse holds per-collection record counts.
type ImportCountsResponse struct {
	Income          int `json:"income"`
	Expenses        int `json:"expenses"`
	NightClosing    int `json:"night_closing"`
	CashAdjustments int `json:"cash_adjustments"`
	Dues            int `json:"dues"`
	UploadedDates   int `json:"uploaded_dates"`
}

// BackupResponse represents the result of a cloud backup.
type BackupResponse struct {
	Bytes int `json:"bytes"`
}

// ToImportResultResponse converts the import output to its response form.
func ToImportResultResponse(output *usecasesync.ImportStateOutput) ImportResultResponse {
	return ImportResultResponse{
		Imported: ImportCountsResponse{
			Income:          output.Imported.Income,
			Expenses:        output.Imported.Expenses,
			NightClosing:    output.Imported.NightClosing,
			CashAdjustments: output.Imported.CashMoves,
			Dues:            output.Imported.Dues,
			UploadedDates:   output.Imported.UploadedDays,
		},
		Dropped: ImportCountsResponse{
			Income:          output.Dropped.Income,
			Expenses:        output.Dropped.Expenses,
			NightClosing:    output.Dropped.NightClosing,
			CashAdjustments: output.Dropped.CashMoves,
			Dues:            output.Dropped.Dues,
			UploadedDates:   output.Dropped.UploadedDays,
		},
	}
}
