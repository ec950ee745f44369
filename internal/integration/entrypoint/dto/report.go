package dto

import (
	"github.com/shop-khata/backend/internal/application/usecase/report"
)

// DailyReportResponse represents the full report for one day.
type DailyReportResponse struct {
	Date           string                 `json:"date"`
	Income         []IncomeResponse       `json:"income"`
	Expenses       []ExpenseResponse      `json:"expenses"`
	NightClosing   []ClosingEntryResponse `json:"night_closing"`
	Dues           []DueResponse          `json:"dues"`
	TotalIncome    string                 `json:"total_income"`
	TotalExpense   string                 `json:"total_expense"`
	NetForDay      string                 `json:"net_for_day"`
	ClosingTotal   string                 `json:"closing_total"`
	WalletSubtotal string                 `json:"wallet_subtotal"`
	IsClosed       bool                   `json:"is_closed"`
	IsUploaded     bool                   `json:"is_uploaded"`
}

// UploadedDaysResponse represents the uploaded-date marker listing.
type UploadedDaysResponse struct {
	Dates []string `json:"dates"`
}

// ToDailyReportResponse converts the report output to its response form.
func ToDailyReportResponse(output *report.GetDailyReportOutput) DailyReportResponse {
	closingEntries := make([]ClosingEntryResponse, len(output.NightClosing))
	for i, e := range output.NightClosing {
		closingEntries[i] = ToClosingEntryResponse(e)
	}

	dues := make([]DueResponse, len(output.Dues))
	for i, d := range output.Dues {
		dues[i] = ToDueResponse(d)
	}

	return DailyReportResponse{
		Date:           output.Day.String(),
		Income:         ToIncomeListResponse(output.Income),
		Expenses:       ToExpenseListResponse(output.Expenses),
		NightClosing:   closingEntries,
		Dues:           dues,
		TotalIncome:    output.TotalIncome.String(),
		TotalExpense:   output.TotalExpense.String(),
		NetForDay:      output.NetForDay.String(),
		ClosingTotal:   output.ClosingTotal.String(),
		WalletSubtotal: output.WalletSubtotal.String(),
		IsClosed:       output.IsClosed,
		IsUploaded:     output.IsUploaded,
	}
}

// ToUploadedDaysResponse converts the marker listing to its response form.
func ToUploadedDaysResponse(output *report.ListUploadedDaysOutput) UploadedDaysResponse {
	dates := make([]string, len(output.Days))
	for i, d := range output.Days {
		dates[i] = d.String()
	}
	return UploadedDaysResponse{Dates: dates}
}
