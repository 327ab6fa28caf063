package treasury

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/treasury/model"
	"tripdesk/internal/domains/treasury/model/dto"
	"tripdesk/internal/domains/treasury/service"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Treasury
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Treasury, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/treasuries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTreasury)
		routerGroup.Get("/", handler.GetTreasuries)
		routerGroup.Get("/{id}", handler.GetTreasuryByID)
		routerGroup.Patch("/{id}", handler.UpdateTreasury)
		routerGroup.Post("/transfer", handler.Transfer)
		routerGroup.Delete("/{id}", handler.DeleteTreasury)
	})
}

// CreateTreasury opens a cash or bank account.
// @Summary Create a treasury
// @Description Create a cash or bank account with an opening balance.
// @Tags Treasury
// @Accept json
// @Produce json
// @Param request body dto.CreateTreasuryRequest true "Create Treasury Request"
// @Success 201 {object} response.Message "Treasury created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treasuries [post]
// @Security BearerAuth
func (handler *Handler) CreateTreasury(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTreasury")
	defer scope.End()

	req := dto.CreateTreasuryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create treasury")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Treasury created successfully")

	response.WithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetTreasuries lists treasuries with running balances.
// @Summary Get all treasuries
// @Description Retrieve all treasuries with their current balances.
// @Tags Treasury
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetTreasuriesResponse "List of treasuries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treasuries [get]
// @Security BearerAuth
func (handler *Handler) GetTreasuries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTreasuries")
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

	treasuries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get treasuries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Treasuries retrieved successfully")

	response.WithJSON(w, http.StatusOK, treasuries)
}

// GetTreasuryByID retrieves one treasury.
// @Summary Get a treasury by ID
// @Description Retrieve a treasury by its unique identifier.
// @Tags Treasury
// @Accept json
// @Produce json
// @Param id path string true "Treasury ID"
// @Success 200 {object} dto.TreasuryResponse "Treasury details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treasuries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTreasuryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTreasuryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	treasury, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get treasury by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Treasury retrieved successfully")

	response.WithJSON(w, http.StatusOK, treasury)
}

// UpdateTreasury edits treasury descriptive fields.
// @Summary Update a treasury by ID
// @Description Update a treasury's name and notes. Balances move only through transactions and transfers.
// @Tags Treasury
// @Accept json
// @Produce json
// @Param id path string true "Treasury ID"
// @Param request body dto.UpdateTreasuryRequest true "Update Treasury Request"
// @Success 200 {object} response.Message "Treasury updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treasuries/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTreasury(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTreasury")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTreasuryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update treasury")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Treasury updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Treasury updated successfully")
}

// Transfer moves money between two treasuries.
// @Summary Transfer between treasuries
// @Description Move money between two treasuries, converting across currencies at current rates.
// @Tags Treasury
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer Request"
// @Success 200 {object} response.Message "Transfer completed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treasuries/transfer [post]
// @Security BearerAuth
func (handler *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Transfer")
	defer scope.End()

	req := dto.TransferRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Transfer(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to transfer between treasuries")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Transfer completed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Transfer completed successfully")
}

// DeleteTreasury removes an empty treasury.
// @Summary Delete a treasury by ID
// @Description Delete a treasury whose balance is zero.
// @Tags Treasury
// @Accept json
// @Produce json
// @Param id path string true "Treasury ID"
// @Success 200 {object} response.Message "Treasury deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treasuries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTreasury(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTreasury")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete treasury")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Treasury deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Treasury deleted successfully")
}
