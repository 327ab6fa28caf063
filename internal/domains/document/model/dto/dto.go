package dto

import (
	"mime/multipart"
	"tripdesk/internal/domains/document/model"
	"tripdesk/shared"
	gDto "tripdesk/shared/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type UploadDocumentRequest struct {
	Title       string                `json:"title" validate:"required,max=255"`
	BookingID   string                `json:"booking_id" validate:"required,uuid"`
	PassengerID string                `json:"passenger_id" validate:"omitempty,uuid"`
	File        *multipart.FileHeader `json:"file" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg application/pdf"`
	FileData    multipart.File        `json:"-"`
}

func (c *UploadDocumentRequest) ToModel(url, contentType, user string) model.Document {
	return model.Document{
		ID:          uuid.NewString(),
		Title:       c.Title,
		BookingID:   c.BookingID,
		PassengerID: c.PassengerID,
		FileURL:     url,
		ContentType: contentType,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type DocumentResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	BookingID   string `json:"booking_id"`
	PassengerID string `json:"passenger_id,omitempty"`
	FileURL     string `json:"file_url"`
	ContentType string `json:"content_type"`
	gDto.Metadata
}

func (r *DocumentResponse) FromModel(document model.Document) {
	r.ID = document.ID
	r.Title = document.Title
	r.BookingID = document.BookingID
	r.PassengerID = document.PassengerID
	r.FileURL = document.FileURL
	r.ContentType = document.ContentType
	r.Metadata.FromModel(document.Metadata)
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetDocumentsResponse) FromModels(models []model.Document, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Documents = make([]DocumentResponse, len(models))
	for i, m := range models {
		r.Documents[i].FromModel(m)
	}
}
