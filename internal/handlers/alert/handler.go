package alert

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/alert/service"
	"tripdesk/shared/constant"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Alert
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Alert, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/alerts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAlerts)
	})
}

// GetAlerts derives the current alert list from live bookings.
// @Summary Get current alerts
// @Description Derive time-sensitive alerts (unpaid travel, missing passports, departures tomorrow) from the booking set.
// @Tags Alert
// @Accept json
// @Produce json
// @Success 200 {array} model.Alert "Current alerts, critical first"
// @Failure 500 {object} response.Error
// @Router /v1/alerts [get]
// @Security BearerAuth
func (handler *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAlerts")
	defer scope.End()

	alerts, err := handler.service.Generate(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate alerts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Alerts generated successfully")

	response.WithJSON(w, http.StatusOK, alerts)
}
