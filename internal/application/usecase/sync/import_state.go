package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// ImportStateInput represents the input for importing a state document.
type ImportStateInput struct {
	JSON []byte
}

// ImportStateOutput reports what the import did.
type ImportStateOutput struct {
	Imported ImportCounts
	Dropped  DropCounts
}

// ImportCounts records how many records of each kind were written.
type ImportCounts struct {
	Income       int
	Expenses     int
	NightClosing int
	CashMoves    int
	Dues         int
	UploadedDays int
}

// ImportStateUseCase replaces the store's collections with a previously
// exported document. Records that fail validation are dropped with a
// warning instead of aborting the import; the replacement itself is a
// single transaction, so a write failure leaves the old state intact. The
// stored PIN is never touched.
type ImportStateUseCase struct {
	stateRepo adapter.StateRepository
}

// NewImportStateUseCase creates a new ImportStateUseCase instance.
func NewImportStateUseCase(stateRepo adapter.StateRepository) *ImportStateUseCase {
	return &ImportStateUseCase{stateRepo: stateRepo}
}

// Execute imports the document.
func (uc *ImportStateUseCase) Execute(ctx context.Context, input ImportStateInput) (*ImportStateOutput, error) {
	var doc StateDocument
	if err := json.Unmarshal(input.JSON, &doc); err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeMalformedStateDocument,
			"state document is not valid JSON",
			domainerror.ErrMalformedStateDocument,
		)
	}

	state, dropped := decodeState(&doc)

	if err := uc.stateRepo.ReplaceCollections(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to replace collections: %w", err)
	}

	out := &ImportStateOutput{
		Imported: ImportCounts{
			Income:       len(state.Income),
			Expenses:     len(state.Expenses),
			NightClosing: len(state.NightClosing),
			CashMoves:    len(state.CashAdjustments),
			Dues:         len(state.Dues),
			UploadedDays: len(state.UploadedDays),
		},
		Dropped: dropped,
	}

	slog.Info("State imported",
		"income", out.Imported.Income,
		"expenses", out.Imported.Expenses,
		"nightClosing", out.Imported.NightClosing,
		"cashAdjustments", out.Imported.CashMoves,
		"dues", out.Imported.Dues,
		"uploadedDates", out.Imported.UploadedDays,
		"dropped", dropped.Total(),
	)
	return out, nil
}
