package adapter

import (
	"context"

	"github.com/shop-khata/backend/internal/domain/entity"
)

// StateRepository reads and replaces the full store snapshot for the cloud
// sync boundary.
type StateRepository interface {
	// Export reads every collection plus settings and uploaded-day markers
	// into one snapshot.
	Export(ctx context.Context) (*entity.ShopState, error)

	// ReplaceCollections wholesale-replaces the five entry collections and
	// the uploaded-day set in a single transaction. Settings identity fields
	// (PIN hash, recovery state) are never touched; opening cash, auto-sync
	// and language are applied when state.Settings is non-nil.
	ReplaceCollections(ctx context.Context, state *entity.ShopState) error
}
