package dto

import (
	"math"
	"time"
	"tripdesk/internal/domains/supplier/model"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Contact string `json:"contact" validate:"omitempty,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Notes   string `json:"notes" validate:"omitempty,max=1000"`
}

func (r CreateSupplierRequest) ToModel(user string) model.Supplier {
	return model.Supplier{
		ID:      uuid.NewString(),
		Name:    r.Name,
		Contact: r.Contact,
		Phone:   r.Phone,
		Notes:   r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateSupplierRequest struct {
	Name    string `json:"name" validate:"omitempty,max=255" db:"name"`
	Contact string `json:"contact" validate:"omitempty,max=255" db:"contact"`
	Phone   string `json:"phone" validate:"omitempty,max=32" db:"phone"`
	Notes   string `json:"notes" validate:"omitempty,max=1000" db:"notes"`
}

type SupplierResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Contact    string    `json:"contact,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	TotalPaid  float64   `json:"totalPaid"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

func (r *SupplierResponse) FromModel(supplier model.Supplier, totalPaid float64) {
	r.ID = supplier.ID
	r.Name = supplier.Name
	r.Contact = supplier.Contact
	r.Phone = supplier.Phone
	r.Notes = supplier.Notes
	r.TotalPaid = totalPaid
	r.CreatedAt = supplier.CreatedAt
	r.ModifiedAt = supplier.ModifiedAt
}

type GetSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	Total     int                `json:"total"`
	TotalPage int                `json:"totalPage"`
}

func (r *GetSuppliersResponse) CalculateTotalPage(total, limit int) {
	r.Total = total

	if limit > 0 {
		r.TotalPage = int(math.Ceil(float64(total) / float64(limit)))
	}
}
