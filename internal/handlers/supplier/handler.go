package supplier

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/supplier/model"
	"tripdesk/internal/domains/supplier/model/dto"
	"tripdesk/internal/domains/supplier/service"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Supplier
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Supplier, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/suppliers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSupplier)
		routerGroup.Get("/", handler.GetSuppliers)
		routerGroup.Get("/{id}", handler.GetSupplierByID)
		routerGroup.Patch("/{id}", handler.UpdateSupplier)
		routerGroup.Delete("/{id}", handler.DeleteSupplier)
	})
}

// CreateSupplier registers a supplier.
// @Summary Create a supplier
// @Description Register a supplier in the ledger.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param request body dto.CreateSupplierRequest true "Create Supplier Request"
// @Success 201 {object} response.Message "Supplier created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/suppliers [post]
// @Security BearerAuth
func (handler *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSupplier")
	defer scope.End()

	req := dto.CreateSupplierRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create supplier")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Supplier created successfully")

	response.WithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetSuppliers lists suppliers with amounts paid to each.
// @Summary Get all suppliers
// @Description Retrieve suppliers with the total expense recorded against each.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetSuppliersResponse "List of suppliers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/suppliers [get]
// @Security BearerAuth
func (handler *Handler) GetSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSuppliers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	suppliers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get suppliers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Suppliers retrieved successfully")

	response.WithJSON(w, http.StatusOK, suppliers)
}

// GetSupplierByID retrieves one supplier.
// @Summary Get a supplier by ID
// @Description Retrieve a supplier and the total paid to them.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse "Supplier details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/suppliers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSupplierByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSupplierByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	supplier, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get supplier by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Supplier retrieved successfully")

	response.WithJSON(w, http.StatusOK, supplier)
}

// UpdateSupplier edits a supplier record.
// @Summary Update a supplier by ID
// @Description Update a supplier's contact details and notes.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param request body dto.UpdateSupplierRequest true "Update Supplier Request"
// @Success 200 {object} response.Message "Supplier updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/suppliers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSupplier")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSupplierRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update supplier")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Supplier updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Supplier updated successfully")
}

// DeleteSupplier removes a supplier with no recorded transactions.
// @Summary Delete a supplier by ID
// @Description Delete a supplier that no transaction references.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} response.Message "Supplier deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/suppliers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSupplier")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete supplier")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Supplier deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Supplier deleted successfully")
}
