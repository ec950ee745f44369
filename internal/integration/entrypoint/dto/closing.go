package dto

import (
	"github.com/shop-khata/backend/internal/application/usecase/closing"
	"github.com/shop-khata/backend/internal/domain/entity"
)

// RecordClosingRequest represents the request body for recording one
// closing slot.
type RecordClosingRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// ClosingEntryResponse represents one recorded slot in API responses.
type ClosingEntryResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
}

// ClosingSlotResponse represents one slot in the day status, recorded or not.
type ClosingSlotResponse struct {
	Category string                `json:"category"`
	Entry    *ClosingEntryResponse `json:"entry,omitempty"`
}

// DayStatusResponse represents the full closing state for one day.
type DayStatusResponse struct {
	Date           string                `json:"date"`
	Slots          []ClosingSlotResponse `json:"slots"`
	Recorded       int                   `json:"recorded"`
	Total          int                   `json:"total"`
	Complete       bool                  `json:"complete"`
	WalletSubtotal string                `json:"wallet_subtotal"`
}

// ToClosingEntryResponse converts a slot entry to its response form.
func ToClosingEntryResponse(entry *entity.NightClosingEntry) ClosingEntryResponse {
	return ClosingEntryResponse{
		ID:       entry.ID.String(),
		Category: string(entry.Category),
		Amount:   entry.Amount.String(),
		Date:     entry.Day.String(),
	}
}

// ToDayStatusResponse converts the day status output to its response form.
// Slots appear in display order whether recorded or not.
func ToDayStatusResponse(output *closing.GetDayStatusOutput) DayStatusResponse {
	slots := make([]ClosingSlotResponse, 0, output.Total)
	for _, category := range entity.ClosingCategories() {
		slot := ClosingSlotResponse{Category: string(category)}
		if entry, ok := output.Entries[category]; ok {
			resp := ToClosingEntryResponse(entry)
			slot.Entry = &resp
		}
		slots = append(slots, slot)
	}

	return DayStatusResponse{
		Date:           output.Day.String(),
		Slots:          slots,
		Recorded:       output.Recorded,
		Total:          output.Total,
		Complete:       output.Complete,
		WalletSubtotal: output.WalletSubtotal.String(),
	}
}
