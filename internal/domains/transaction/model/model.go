package model

import (
	"time"
	"tripdesk/shared/model"
)

const (
	TableName  = "transactions"
	EntityName = "transaction"

	FieldID         = "id"
	FieldType       = "type"
	FieldCategory   = "category"
	FieldAmount     = "amount"
	FieldDate       = "transaction_date"
	FieldTreasuryID = "treasury_id"
	FieldBookingID  = "booking_id"
	FieldSupplierID = "supplier_id"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Categories reserved for the two legs of an internal treasury transfer.
// Transfers move money between accounts without creating or destroying value,
// so reporting must not count either leg as income or expense.
const (
	CategoryTransferOut = "transfer_out"
	CategoryTransferIn  = "transfer_in"
)

// Transaction is one income or expense entry in the accounting ledger, stored
// in the base currency and debited or credited against a treasury.
type Transaction struct {
	ID              string    `db:"id"`
	Type            string    `db:"type"`
	Category        string    `db:"category"`
	Description     string    `db:"description"`
	Amount          float64   `db:"amount"`
	TransactionDate time.Time `db:"transaction_date"`
	TreasuryID      string    `db:"treasury_id"`
	BookingID       string    `db:"booking_id"`
	SupplierID      string    `db:"supplier_id"`
	model.Metadata
}
