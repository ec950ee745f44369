package dto

import (
	"github.com/shop-khata/backend/internal/application/usecase/ledger"
)

// OverviewResponse represents the dashboard overview in API responses.
type OverviewResponse struct {
	Date                  string `json:"date"`
	TodayIncome           string `json:"today_income"`
	TodayExpense          string `json:"today_expense"`
	TotalIncome           string `json:"total_income"`
	TotalExpense          string `json:"total_expense"`
	CashIn                string `json:"cash_in"`
	CashOut               string `json:"cash_out"`
	OpeningCash           string `json:"opening_cash"`
	CurrentCashBalance    string `json:"current_cash_balance"`
	TotalOutstandingDues  string `json:"total_outstanding_dues"`
	AllTimeProfit         string `json:"all_time_profit"`
	IsTodayClosed         bool   `json:"is_today_closed"`
	IsTodayReportUploaded bool   `json:"is_today_report_uploaded"`
}

// MonthPointResponse represents one month in the trailing series.
type MonthPointResponse struct {
	Month   string `json:"month"`
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// MonthlySeriesResponse represents the trailing monthly series.
type MonthlySeriesResponse struct {
	Months []MonthPointResponse `json:"months"`
}

// ToOverviewResponse converts the overview output to its response form.
func ToOverviewResponse(output *ledger.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		Date:                  output.Day.String(),
		TodayIncome:           output.TodayIncome.String(),
		TodayExpense:          output.TodayExpense.String(),
		TotalIncome:           output.TotalIncomeAllTime.String(),
		TotalExpense:          output.TotalExpenseAllTime.String(),
		CashIn:                output.CashIn.String(),
		CashOut:               output.CashOut.String(),
		OpeningCash:           output.OpeningCash.String(),
		CurrentCashBalance:    output.CurrentCashBalance.String(),
		TotalOutstandingDues:  output.TotalOutstandingDues.String(),
		AllTimeProfit:         output.AllTimeProfit.String(),
		IsTodayClosed:         output.IsTodayClosed,
		IsTodayReportUploaded: output.IsTodayReportUploaded,
	}
}

// ToMonthlySeriesResponse converts the series output to its response form.
func ToMonthlySeriesResponse(output *ledger.GetMonthlySeriesOutput) MonthlySeriesResponse {
	months := make([]MonthPointResponse, len(output.Points))
	for i, p := range output.Points {
		months[i] = MonthPointResponse{
			Month:   p.Month.Key(),
			Label:   p.Label,
			Income:  p.Income.String(),
			Expense: p.Expense.String(),
		}
	}
	return MonthlySeriesResponse{Months: months}
}
