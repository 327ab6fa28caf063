package inventory

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/inventory/model"
	"tripdesk/internal/domains/inventory/model/dto"
	"tripdesk/internal/domains/inventory/service"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Inventory
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Inventory, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
	})
}

// CreateItem registers a pre-purchased travel product.
// @Summary Create an inventory item
// @Description Register a pre-purchased product (room block, flight allotment) with its prices and quantity.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Message "Inventory item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inventory item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item created successfully")

	response.WithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetItems lists inventory items with derived sold and remaining counts.
// @Summary Get all inventory items
// @Description Retrieve inventory items with live consumption stats.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param type query string false "Filter by item type"
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetItemsResponse "List of inventory items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [get]
// @Security BearerAuth
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
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

	if itemType := r.URL.Query().Get(model.FieldType); itemType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    itemType,
			Table:    model.TableName,
		})
	}

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID retrieves one inventory item with its consumption stats.
// @Summary Get an inventory item by ID
// @Description Retrieve an inventory item with derived sold and remaining counts.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse "Inventory item details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItem edits an inventory item. Price changes fan out to bookings.
// @Summary Update an inventory item by ID
// @Description Update an item. Changing prices republishes costs to bookings referencing the item.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Message "Inventory item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inventory item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory item updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inventory item updated successfully")
}

// DeleteItem removes an unreferenced inventory item.
// @Summary Delete an inventory item by ID
// @Description Delete an item that no active booking references.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Message "Inventory item deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inventory item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inventory item deleted successfully")
}
