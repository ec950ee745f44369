// Package sync contains the full-state export, import, and cloud backup
// use cases.
package sync

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// stateDocumentVersion tags exported documents so future format changes can
// be detected on import.
const stateDocumentVersion = 1

// StateDocument is the portable JSON form of the whole shop state. It is
// the single interchange format for file export, file import, and cloud
// backup, so one shop's data can move between installs as one document.
type StateDocument struct {
	Version      int             `json:"version"`
	ExportedAt   time.Time       `json:"exportedAt"`
	Income       []incomeRecord  `json:"income"`
	Expenses     []expenseRecord `json:"expenses"`
	NightClosing []closingRecord `json:"nightClosing"`
	CashMoves    []cashRecord    `json:"cashAdjustments"`
	Dues         []dueRecord     `json:"dues"`
	Settings     *settingsRecord `json:"settings,omitempty"`
	UploadedDays []string        `json:"uploadedDates"`
}

type incomeRecord struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

type expenseRecord struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type closingRecord struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
}

type cashRecord struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"type"`
	Note      string          `json:"note,omitempty"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

type dueRecord struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	PhotoRef     string          `json:"photoRef,omitempty"`
	Date         string          `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
	IsPaid       bool            `json:"isPaid"`
	PaidDate     string          `json:"paidDate,omitempty"`
}

// settingsRecord carries the exportable settings. The PIN hash and recovery
// state never leave the store.
type settingsRecord struct {
	OpeningCash decimal.Decimal `json:"openingCash"`
	AutoSync    bool            `json:"autoSync"`
	Language    string          `json:"language"`
}

// encodeState renders the shop state as a document.
func encodeState(state *entity.ShopState) *StateDocument {
	doc := &StateDocument{
		Version:    stateDocumentVersion,
		ExportedAt: time.Now().UTC(),
	}

	for _, e := range state.Income {
		doc.Income = append(doc.Income, incomeRecord{
			ID:        e.ID.String(),
			Category:  string(e.Category),
			Amount:    e.Amount,
			Date:      e.Day.String(),
			CreatedAt: e.CreatedAt,
		})
	}
	for _, e := range state.Expenses {
		doc.Expenses = append(doc.Expenses, expenseRecord{
			ID:     e.ID.String(),
			Name:   e.Name,
			Amount: e.Amount,
			Date:   e.Day.String(),
		})
	}
	for _, e := range state.NightClosing {
		doc.NightClosing = append(doc.NightClosing, closingRecord{
			ID:       e.ID.String(),
			Category: string(e.Category),
			Amount:   e.Amount,
			Date:     e.Day.String(),
		})
	}
	for _, e := range state.CashAdjustments {
		doc.CashMoves = append(doc.CashMoves, cashRecord{
			ID:        e.ID.String(),
			Amount:    e.Amount,
			Direction: string(e.Direction),
			Note:      e.Note,
			Date:      e.Day.String(),
			CreatedAt: e.CreatedAt,
		})
	}
	for _, d := range state.Dues {
		rec := dueRecord{
			ID:           d.ID.String(),
			CustomerName: d.CustomerName,
			Phone:        d.Phone,
			Amount:       d.Amount,
			Note:         d.Note,
			PhotoRef:     d.PhotoRef,
			Date:         d.Day.String(),
			CreatedAt:    d.CreatedAt,
			IsPaid:       d.IsPaid,
		}
		if d.PaidDay != nil {
			rec.PaidDate = d.PaidDay.String()
		}
		doc.Dues = append(doc.Dues, rec)
	}
	if state.Settings != nil {
		doc.Settings = &settingsRecord{
			OpeningCash: state.Settings.OpeningCash,
			AutoSync:    state.Settings.AutoSync,
			Language:    state.Settings.Language,
		}
	}
	for _, d := range state.UploadedDays {
		doc.UploadedDays = append(doc.UploadedDays, d.String())
	}

	return doc
}

// DropCounts records how many records of each kind were discarded while
// decoding a document.
type DropCounts struct {
	Income       int
	Expenses     int
	NightClosing int
	CashMoves    int
	Dues         int
	UploadedDays int
}

// Total returns the overall number of dropped records.
func (c DropCounts) Total() int {
	return c.Income + c.Expenses + c.NightClosing + c.CashMoves + c.Dues + c.UploadedDays
}

// decodeState turns a document back into a shop state, dropping any record
// that fails validation. Each drop is logged with the reason; a document
// full of garbage decodes to an empty state rather than failing.
func decodeState(doc *StateDocument) (*entity.ShopState, DropCounts) {
	state := &entity.ShopState{}
	var dropped DropCounts

	for _, rec := range doc.Income {
		day, err := valueobject.ParseDay(rec.Date)
		if err != nil || !entity.IsValidIncomeCategory(entity.IncomeCategory(rec.Category)) || !rec.Amount.IsPositive() {
			slog.Warn("Dropping malformed income record", "id", rec.ID, "category", rec.Category, "date", rec.Date)
			dropped.Income++
			continue
		}
		e := entity.NewIncomeEntry(entity.IncomeCategory(rec.Category), rec.Amount, day)
		if id, err := uuid.Parse(rec.ID); err == nil {
			e.ID = id
		}
		if !rec.CreatedAt.IsZero() {
			e.CreatedAt = rec.CreatedAt
		}
		state.Income = append(state.Income, e)
	}

	for _, rec := range doc.Expenses {
		day, err := valueobject.ParseDay(rec.Date)
		if err != nil || rec.Name == "" || !rec.Amount.IsPositive() {
			slog.Warn("Dropping malformed expense record", "id", rec.ID, "date", rec.Date)
			dropped.Expenses++
			continue
		}
		e := entity.NewExpense(rec.Name, rec.Amount, day)
		if id, err := uuid.Parse(rec.ID); err == nil {
			e.ID = id
		}
		state.Expenses = append(state.Expenses, e)
	}

	seenSlots := make(map[string]bool)
	for _, rec := range doc.NightClosing {
		day, err := valueobject.ParseDay(rec.Date)
		if err != nil || !entity.IsValidClosingCategory(entity.ClosingCategory(rec.Category)) || !rec.Amount.IsPositive() {
			slog.Warn("Dropping malformed closing record", "id", rec.ID, "category", rec.Category, "date", rec.Date)
			dropped.NightClosing++
			continue
		}
		// one entry per (day, category); later duplicates lose
		slot := rec.Date + "/" + rec.Category
		if seenSlots[slot] {
			slog.Warn("Dropping duplicate closing slot", "id", rec.ID, "category", rec.Category, "date", rec.Date)
			dropped.NightClosing++
			continue
		}
		seenSlots[slot] = true
		e := entity.NewNightClosingEntry(entity.ClosingCategory(rec.Category), rec.Amount, day)
		if id, err := uuid.Parse(rec.ID); err == nil {
			e.ID = id
		}
		state.NightClosing = append(state.NightClosing, e)
	}

	for _, rec := range doc.CashMoves {
		day, err := valueobject.ParseDay(rec.Date)
		if err != nil || !entity.IsValidCashDirection(entity.CashDirection(rec.Direction)) || !rec.Amount.IsPositive() {
			slog.Warn("Dropping malformed cash record", "id", rec.ID, "type", rec.Direction, "date", rec.Date)
			dropped.CashMoves++
			continue
		}
		e := entity.NewCashAdjustment(rec.Amount, entity.CashDirection(rec.Direction), rec.Note, day)
		if id, err := uuid.Parse(rec.ID); err == nil {
			e.ID = id
		}
		if !rec.CreatedAt.IsZero() {
			e.CreatedAt = rec.CreatedAt
		}
		state.CashAdjustments = append(state.CashAdjustments, e)
	}

	for _, rec := range doc.Dues {
		day, err := valueobject.ParseDay(rec.Date)
		if err != nil || rec.CustomerName == "" || !rec.Amount.IsPositive() {
			slog.Warn("Dropping malformed due record", "id", rec.ID, "date", rec.Date)
			dropped.Dues++
			continue
		}
		d := entity.NewCustomerDue(rec.CustomerName, rec.Phone, rec.Amount, rec.Note, rec.PhotoRef, day)
		if id, err := uuid.Parse(rec.ID); err == nil {
			d.ID = id
		}
		if !rec.CreatedAt.IsZero() {
			d.CreatedAt = rec.CreatedAt
		}
		if rec.IsPaid {
			paidDay, err := valueobject.ParseDay(rec.PaidDate)
			if err != nil {
				// paid without a usable date still counts as paid
				paidDay = day
			}
			d.IsPaid = true
			d.PaidDay = &paidDay
		}
		state.Dues = append(state.Dues, d)
	}

	seenDays := make(map[valueobject.Day]bool)
	for _, raw := range doc.UploadedDays {
		day, err := valueobject.ParseDay(raw)
		if err != nil {
			slog.Warn("Dropping malformed uploaded-date marker", "date", raw)
			dropped.UploadedDays++
			continue
		}
		if seenDays[day] {
			slog.Warn("Dropping duplicate uploaded-date marker", "date", raw)
			dropped.UploadedDays++
			continue
		}
		seenDays[day] = true
		state.UploadedDays = append(state.UploadedDays, day)
	}

	return state, dropped
}

// marshalDocument renders the document as indented JSON, the format the
// export file and cloud backups use.
func marshalDocument(doc *StateDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
