package settings

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/settings/model/dto"
	"tripdesk/internal/domains/settings/service"
	"tripdesk/shared/constant"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Settings
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Settings, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/rates", handler.GetRates)
		routerGroup.Put("/rates", handler.UpdateRate)
		routerGroup.Put("/", handler.UpsertSetting)
		routerGroup.Get("/{id}", handler.GetSetting)
	})
}

// GetSetting godoc
// @Summary Get a setting
// @Description Get a single application setting by key.
// @Tags settings
// @Security EndUserBearerToken
// @Produce json
// @Param id path string true "setting key"
// @Success 200 {object} response.Base{data=dto.SettingResponse}
// @Failure 404 {object} response.Base
// @Router /v1/settings/{id} [get]
func (handler *Handler) GetSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSetting")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpsertSetting godoc
// @Summary Create or replace a setting
// @Description Create or replace an application setting. Admin only.
// @Tags settings
// @Security EndUserBearerToken
// @Accept json
// @Produce json
// @Param request body dto.UpsertSettingRequest true "setting"
// @Success 200 {object} response.Base
// @Failure 400 {object} response.Base
// @Router /v1/settings [put]
func (handler *Handler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertSetting")
	defer scope.End()

	var req dto.UpsertSettingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	if err := handler.service.Upsert(ctx, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Setting saved successfully")
}

// GetRates godoc
// @Summary Get exchange rates
// @Description Get the stored exchange-rate table against the base currency.
// @Tags settings
// @Security EndUserBearerToken
// @Produce json
// @Success 200 {object} response.Base{data=dto.RatesResponse}
// @Router /v1/settings/rates [get]
func (handler *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	rates, err := handler.service.Rates(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.RatesResponse{Base: rates.Base, Rates: rates.Table})
}

// UpdateRate godoc
// @Summary Update an exchange rate
// @Description Set the rate for one currency against the base. Admin only.
// @Tags settings
// @Security EndUserBearerToken
// @Accept json
// @Produce json
// @Param request body dto.UpdateRateRequest true "rate"
// @Success 200 {object} response.Base
// @Failure 400 {object} response.Base
// @Router /v1/settings/rates [put]
func (handler *Handler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRate")
	defer scope.End()

	var req dto.UpdateRateRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRate(ctx, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Exchange rate updated successfully")
}
