package transaction

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/transaction/model"
	"tripdesk/internal/domains/transaction/model/dto"
	"tripdesk/internal/domains/transaction/service"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/timezone"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Transaction
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Transaction, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transactions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTransaction)
		routerGroup.Get("/", handler.GetTransactions)
		routerGroup.Get("/{id}", handler.GetTransactionByID)
		routerGroup.Patch("/{id}", handler.UpdateTransaction)
		routerGroup.Delete("/{id}", handler.DeleteTransaction)
	})
}

// CreateTransaction records an income or expense entry.
// @Summary Create a transaction
// @Description Record an income or expense and move the treasury balance atomically.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} response.Message "Transaction recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [post]
// @Security BearerAuth
func (handler *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTransaction")
	defer scope.End()

	req := dto.CreateTransactionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction recorded successfully")

	response.WithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetTransactions lists ledger entries.
// @Summary Get all transactions
// @Description Retrieve transactions filtered by type, category, treasury and date range.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param type query string false "Filter by type (income or expense)"
// @Param category query string false "Filter by category"
// @Param treasury_id query string false "Filter by treasury"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.GetTransactionsResponse "List of transactions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldType, model.FieldCategory, model.FieldTreasuryID} {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if from := r.URL.Query().Get("from"); from != constant.Empty {
		if parsed, err := timezone.Parse("2006-01-02", from); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldDate,
				ArgName:  "date_from",
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    parsed,
				Table:    model.TableName,
			})
		}
	}

	if to := r.URL.Query().Get("to"); to != constant.Empty {
		if parsed, err := timezone.Parse("2006-01-02", to); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldDate,
				ArgName:  "date_to",
				Operator: gDto.FilterOperatorLessEq,
				Value:    parsed,
				Table:    model.TableName,
			})
		}
	}

	transactions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transactions retrieved successfully")

	response.WithJSON(w, http.StatusOK, transactions)
}

// GetTransactionByID retrieves one ledger entry.
// @Summary Get a transaction by ID
// @Description Retrieve a transaction by its unique identifier.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	transaction, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transaction by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction retrieved successfully")

	response.WithJSON(w, http.StatusOK, transaction)
}

// UpdateTransaction edits descriptive fields of a ledger entry.
// @Summary Update a transaction by ID
// @Description Update category and description. Amounts are immutable; delete and re-enter to correct them.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Update Transaction Request"
// @Success 200 {object} response.Message "Transaction updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTransaction")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTransactionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update transaction")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Transaction updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Transaction updated successfully")
}

// DeleteTransaction removes a ledger entry and reverses its balance movement.
// @Summary Delete a transaction by ID
// @Description Delete a transaction and restore the treasury balance it moved.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.Message "Transaction deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTransaction")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete transaction")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Transaction deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Transaction deleted successfully")
}
