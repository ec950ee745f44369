package sync

import (
	"context"
	"fmt"

	"github.com/shop-khata/backend/internal/application/adapter"
)

// ExportStateOutput represents the output of exporting the shop state.
type ExportStateOutput struct {
	Document *StateDocument
	JSON     []byte
}

// ExportStateUseCase snapshots the whole store as one portable JSON
// document. Credentials are excluded; an exported file restored on another
// install never overwrites that install's PIN.
type ExportStateUseCase struct {
	stateRepo adapter.StateRepository
}

// NewExportStateUseCase creates a new ExportStateUseCase instance.
func NewExportStateUseCase(stateRepo adapter.StateRepository) *ExportStateUseCase {
	return &ExportStateUseCase{stateRepo: stateRepo}
}

// Execute exports the state.
func (uc *ExportStateUseCase) Execute(ctx context.Context) (*ExportStateOutput, error) {
	state, err := uc.stateRepo.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read shop state: %w", err)
	}

	doc := encodeState(state)
	raw, err := marshalDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state document: %w", err)
	}

	return &ExportStateOutput{Document: doc, JSON: raw}, nil
}
