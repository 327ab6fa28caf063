package document

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/document/model"
	"tripdesk/internal/domains/document/model/dto"
	"tripdesk/internal/domains/document/service"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Document
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Document, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/documents", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadDocument)
		routerGroup.Get("/", handler.GetDocuments)
		routerGroup.Get("/{id}", handler.GetDocumentByID)
		routerGroup.Delete("/{id}", handler.DeleteDocument)
	})
}

// UploadDocument stores a booking document.
// @Summary Upload a document
// @Description Upload a passport scan, visa copy or other file and attach it to a booking.
// @Tags Document
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param title formData string true "Document title"
// @Param booking_id formData string true "Booking ID"
// @Param passenger_id formData string false "Passenger ID"
// @Success 201 {object} dto.DocumentResponse "Document uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents [post]
// @Security BearerAuth
func (handler *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadDocument")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadDocumentRequest{
		Title:       r.FormValue("title"),
		BookingID:   r.FormValue("booking_id"),
		PassengerID: r.FormValue("passenger_id"),
		File:        fileHeader,
		FileData:    file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate document upload")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDocuments lists stored documents.
// @Summary Get all documents
// @Description Retrieve documents, optionally filtered by booking.
// @Tags Document
// @Accept json
// @Produce json
// @Param booking_id query string false "Filter by booking"
// @Success 200 {object} dto.GetDocumentsResponse "List of documents"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents [get]
// @Security BearerAuth
func (handler *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if bookingID := r.URL.Query().Get(model.FieldBookingID); bookingID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	documents, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get documents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Documents retrieved successfully")

	response.WithJSON(w, http.StatusOK, documents)
}

// GetDocumentByID retrieves one document record.
// @Summary Get a document by ID
// @Description Retrieve a document record by its unique identifier.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse "Document details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDocumentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocumentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	document, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get document by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document retrieved successfully")

	response.WithJSON(w, http.StatusOK, document)
}

// DeleteDocument removes a document and its stored file.
// @Summary Delete a document by ID
// @Description Delete a document record and remove the stored file.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Message "Document deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Document deleted successfully")
}
