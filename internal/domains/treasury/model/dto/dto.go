package dto

import (
	"math"
	"time"
	"tripdesk/internal/domains/treasury/model"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateTreasuryRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Currency string  `json:"currency" validate:"omitempty,len=3,uppercase"`
	Balance  float64 `json:"balance" validate:"omitempty,gte=0"`
	Notes    string  `json:"notes" validate:"omitempty,max=1000"`
}

func (r CreateTreasuryRequest) ToModel(user string) model.Treasury {
	return model.Treasury{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Currency: r.Currency,
		Balance:  r.Balance,
		Notes:    r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTreasuryRequest struct {
	Name  string `json:"name" validate:"omitempty,max=255" db:"name"`
	Notes string `json:"notes" validate:"omitempty,max=1000" db:"notes"`
}

type TransferRequest struct {
	FromTreasuryID string  `json:"fromTreasuryId" validate:"required,uuid"`
	ToTreasuryID   string  `json:"toTreasuryId" validate:"required,uuid,nefield=FromTreasuryID"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Notes          string  `json:"notes" validate:"omitempty,max=1000"`
}

type TreasuryResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Currency   string    `json:"currency"`
	Balance    float64   `json:"balance"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

func (r *TreasuryResponse) FromModel(treasury model.Treasury) {
	r.ID = treasury.ID
	r.Name = treasury.Name
	r.Currency = treasury.Currency
	r.Balance = treasury.Balance
	r.Notes = treasury.Notes
	r.CreatedAt = treasury.CreatedAt
	r.ModifiedAt = treasury.ModifiedAt
}

type GetTreasuriesResponse struct {
	Treasuries []TreasuryResponse `json:"treasuries"`
	Total      int                `json:"total"`
	TotalPage  int                `json:"totalPage"`
}

func (r *GetTreasuriesResponse) FromModels(treasuries []model.Treasury, total, limit int) {
	r.Treasuries = make([]TreasuryResponse, len(treasuries))

	for i := range treasuries {
		r.Treasuries[i].FromModel(treasuries[i])
	}

	r.Total = total

	if limit > 0 {
		r.TotalPage = int(math.Ceil(float64(total) / float64(limit)))
	}
}
