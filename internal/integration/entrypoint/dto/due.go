package dto

import (
	"time"

	"github.com/shop-khata/backend/internal/application/usecase/due"
	"github.com/shop-khata/backend/internal/domain/entity"
)

// CreateDueRequest represents the request body for recording a due.
type CreateDueRequest struct {
	CustomerName string  `json:"customer_name" binding:"required,min=1,max=255"`
	Phone        string  `json:"phone,omitempty" binding:"omitempty,max=32"`
	Amount       float64 `json:"amount" binding:"required"`
	Note         string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	PhotoRef     string  `json:"photo_ref,omitempty"`
	Date         string  `json:"date,omitempty"`
}

// UpdateDueRequest represents the request body for editing a due.
type UpdateDueRequest struct {
	CustomerName *string  `json:"customer_name,omitempty" binding:"omitempty,min=1,max=255"`
	Phone        *string  `json:"phone,omitempty" binding:"omitempty,max=32"`
	Amount       *float64 `json:"amount,omitempty"`
	Note         *string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	PhotoRef     *string  `json:"photo_ref,omitempty"`
}

// DueResponse represents a customer due in API responses.
type DueResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Amount       string    `json:"amount"`
	Note         string    `json:"note"`
	PhotoRef     string    `json:"photo_ref,omitempty"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	IsPaid       bool      `json:"is_paid"`
	PaidDate     string    `json:"paid_date,omitempty"`
}

// DueListResponse represents the due book listing.
type DueListResponse struct {
	Dues             []DueResponse `json:"dues"`
	TotalOutstanding string        `json:"total_outstanding"`
}

// ToDueResponse converts a due to its response form.
func ToDueResponse(d *entity.CustomerDue) DueResponse {
	resp := DueResponse{
		ID:           d.ID.String(),
		CustomerName: d.CustomerName,
		Phone:        d.Phone,
		Amount:       d.Amount.String(),
		Note:         d.Note,
		PhotoRef:     d.PhotoRef,
		Date:         d.Day.String(),
		CreatedAt:    d.CreatedAt,
		IsPaid:       d.IsPaid,
	}
	if d.PaidDay != nil {
		resp.PaidDate = d.PaidDay.String()
	}
	return resp
}

// ToDueListResponse converts the listing output to its response form.
func ToDueListResponse(output *due.ListDuesOutput) DueListResponse {
	dues := make([]DueResponse, len(output.Dues))
	for i, d := range output.Dues {
		dues[i] = ToDueResponse(d)
	}
	return DueListResponse{
		Dues:             dues,
		TotalOutstanding: output.TotalOutstanding.String(),
	}
}
