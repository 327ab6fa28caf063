package dto

import (
	"encoding/json"
	"tripdesk/internal/domains/settings/model"
	gDto "tripdesk/shared/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"
)

type UpsertSettingRequest struct {
	Key   string          `json:"key"   validate:"required,max=100"`
	Value json.RawMessage `json:"value" validate:"required"`
}

func (c *UpsertSettingRequest) ToModel(user string) model.Setting {
	return model.Setting{
		Key:   c.Key,
		Value: string(c.Value),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SettingResponse struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
	gDto.Metadata
}

func (r *SettingResponse) FromModel(model model.Setting) {
	r.Key = model.Key
	r.Value = json.RawMessage(model.Value)
	r.Metadata.FromModel(model.Metadata)
}

type UpdateRateRequest struct {
	Currency string  `json:"currency" validate:"required,len=3,uppercase"`
	Rate     float64 `json:"rate"     validate:"required,gt=0"`
}

type RatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}
