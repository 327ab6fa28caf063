package dto

import (
	"math"
	"time"
	"tripdesk/internal/domains/client/model"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

func (r CreateClientRequest) ToModel(user string) model.Client {
	return model.Client{
		ID:    uuid.NewString(),
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
		Notes: r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClientRequest struct {
	Name  string `json:"name" validate:"omitempty,max=255" db:"name"`
	Phone string `json:"phone" validate:"omitempty,max=32" db:"phone"`
	Email string `json:"email" validate:"omitempty,email" db:"email"`
	Notes string `json:"notes" validate:"omitempty,max=1000" db:"notes"`
}

type ClientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Outstanding float64   `json:"outstanding"`
	CreatedAt   time.Time `json:"createdAt"`
	ModifiedAt  time.Time `json:"modifiedAt"`
}

func (r *ClientResponse) FromModel(client model.Client, outstanding float64) {
	r.ID = client.ID
	r.Name = client.Name
	r.Phone = client.Phone
	r.Email = client.Email
	r.Notes = client.Notes
	r.Outstanding = outstanding
	r.CreatedAt = client.CreatedAt
	r.ModifiedAt = client.ModifiedAt
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	Total     int              `json:"total"`
	TotalPage int              `json:"totalPage"`
}

func (r *GetClientsResponse) CalculateTotalPage(total, limit int) {
	r.Total = total

	if limit > 0 {
		r.TotalPage = int(math.Ceil(float64(total) / float64(limit)))
	}
}
