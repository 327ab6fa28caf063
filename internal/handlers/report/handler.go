package report

import (
	"net/http"
	"strconv"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/report/service"
	"tripdesk/shared/constant"
	"tripdesk/shared/failure"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Report
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Report, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReport)
	})
}

// GetReport builds the financial report for a period.
// @Summary Build a financial report
// @Description Aggregate sales, cost, expenses and profit for a year, optionally narrowed to a month and booking type.
// @Tags Report
// @Accept json
// @Produce json
// @Param year query int true "Report year"
// @Param month query int false "Report month (1-12)"
// @Param type query string false "Booking type filter (default all)"
// @Success 200 {object} model.Report "Financial report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports [get]
// @Security BearerAuth
func (handler *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReport")
	defer scope.End()

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("year is required"))

		return
	}

	month := 0
	if rawMonth := r.URL.Query().Get("month"); rawMonth != constant.Empty {
		month, err = strconv.Atoi(rawMonth)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, failure.BadRequestFromString("month must be a number"))

			return
		}
	}

	report, err := handler.service.Build(ctx, year, month, r.URL.Query().Get("type"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report built successfully")

	response.WithJSON(w, http.StatusOK, report)
}
