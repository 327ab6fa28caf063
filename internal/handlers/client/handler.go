package client

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/client/model"
	"tripdesk/internal/domains/client/model/dto"
	"tripdesk/internal/domains/client/service"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Client
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Client, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClient)
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/{id}", handler.GetClientByID)
		routerGroup.Patch("/{id}", handler.UpdateClient)
		routerGroup.Delete("/{id}", handler.DeleteClient)
	})
}

// CreateClient registers a client.
// @Summary Create a client
// @Description Register a client in the ledger.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} response.Message "Client created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [post]
// @Security BearerAuth
func (handler *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClient")
	defer scope.End()

	req := dto.CreateClientRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client created successfully")

	response.WithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetClients lists clients with outstanding balances.
// @Summary Get all clients
// @Description Retrieve clients with the amount each still owes.
// @Tags Client
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param phone query string false "Filter by phone"
// @Success 200 {object} dto.GetClientsResponse "List of clients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [get]
// @Security BearerAuth
func (handler *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
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

	if phone := r.URL.Query().Get(model.FieldPhone); phone != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPhone,
			Operator: gDto.FilterOperatorLike,
			Value:    phone,
			Table:    model.TableName,
		})
	}

	clients, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clients retrieved successfully")

	response.WithJSON(w, http.StatusOK, clients)
}

// GetClientByID retrieves one client with their outstanding balance.
// @Summary Get a client by ID
// @Description Retrieve a client and the amount they still owe.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse "Client details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	client, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client retrieved successfully")

	response.WithJSON(w, http.StatusOK, client)
}

// UpdateClient edits a client record.
// @Summary Update a client by ID
// @Description Update a client's contact details and notes.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body dto.UpdateClientRequest true "Update Client Request"
// @Success 200 {object} response.Message "Client updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateClientRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update client")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Client updated successfully")
}

// DeleteClient removes a client who has no bookings.
// @Summary Delete a client by ID
// @Description Delete a client with no bookings on file.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.Message "Client deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete client")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Client deleted successfully")
}
