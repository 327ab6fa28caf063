package dto

import (
	"math"
	"time"
	"tripdesk/internal/domains/transaction/model"
)

type CreateTransactionRequest struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required,max=128"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3,uppercase"`
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TreasuryID  string  `json:"treasuryId" validate:"required,uuid"`
	BookingID   string  `json:"bookingId" validate:"omitempty,uuid"`
	SupplierID  string  `json:"supplierId" validate:"omitempty,uuid"`
}

type UpdateTransactionRequest struct {
	Category    string `json:"category" validate:"omitempty,max=128" db:"category"`
	Description string `json:"description" validate:"omitempty,max=1000" db:"description"`
}

type TransactionResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	Amount          float64   `json:"amount"`
	TransactionDate time.Time `json:"transactionDate"`
	TreasuryID      string    `json:"treasuryId"`
	BookingID       string    `json:"bookingId,omitempty"`
	SupplierID      string    `json:"supplierId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (r *TransactionResponse) FromModel(transaction model.Transaction) {
	r.ID = transaction.ID
	r.Type = transaction.Type
	r.Category = transaction.Category
	r.Description = transaction.Description
	r.Amount = transaction.Amount
	r.TransactionDate = transaction.TransactionDate
	r.TreasuryID = transaction.TreasuryID
	r.BookingID = transaction.BookingID
	r.SupplierID = transaction.SupplierID
	r.CreatedAt = transaction.CreatedAt
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	TotalPage    int                   `json:"totalPage"`
}

func (r *GetTransactionsResponse) FromModels(transactions []model.Transaction, total, limit int) {
	r.Transactions = make([]TransactionResponse, len(transactions))

	for i := range transactions {
		r.Transactions[i].FromModel(transactions[i])
	}

	r.Total = total

	if limit > 0 {
		r.TotalPage = int(math.Ceil(float64(total) / float64(limit)))
	}
}
