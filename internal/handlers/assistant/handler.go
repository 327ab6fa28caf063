package assistant

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/assistant/model/dto"
	"tripdesk/internal/domains/assistant/service"
	"tripdesk/shared/constant"
	"tripdesk/shared/failure"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Assistant
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Assistant, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assistant", func(routerGroup chi.Router) {
		routerGroup.Post("/chat", handler.Chat)
		routerGroup.Get("/flights", handler.LookupFlight)
		routerGroup.Get("/hotels", handler.LookupHotel)
	})
}

// Chat godoc
// @Summary Ask the financial assistant
// @Description Answer a free-text question about the agency's current finances.
// @Tags assistant
// @Security EndUserBearerToken
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "question"
// @Success 200 {object} response.Base{data=dto.AskResponse}
// @Failure 400 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /v1/assistant/chat [post]
func (handler *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Chat")
	defer scope.End()

	var req dto.AskRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Ask(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// LookupFlight godoc
// @Summary Look up a flight schedule
// @Description Best-effort flight enrichment; returns found=false when nothing is known.
// @Tags assistant
// @Security EndUserBearerToken
// @Produce json
// @Param flight_number query string true "flight number"
// @Param date query string true "date in YYYY-MM-DD"
// @Success 200 {object} response.Base{data=dto.FlightInfo}
// @Failure 400 {object} response.Base
// @Router /v1/assistant/flights [get]
func (handler *Handler) LookupFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LookupFlight")
	defer scope.End()

	flightNumber := r.URL.Query().Get("flight_number")
	date := r.URL.Query().Get("date")

	if flightNumber == constant.Empty || date == constant.Empty {
		err := failure.BadRequestFromString("flight_number and date are required")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.LookupFlight(ctx, flightNumber, date))
}

// LookupHotel godoc
// @Summary Look up a hotel
// @Description Best-effort hotel enrichment; returns found=false when nothing is known.
// @Tags assistant
// @Security EndUserBearerToken
// @Produce json
// @Param name query string true "hotel name"
// @Param city query string false "city"
// @Success 200 {object} response.Base{data=dto.HotelInfo}
// @Failure 400 {object} response.Base
// @Router /v1/assistant/hotels [get]
func (handler *Handler) LookupHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LookupHotel")
	defer scope.End()

	name := r.URL.Query().Get("name")
	if name == constant.Empty {
		err := failure.BadRequestFromString("name is required")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.LookupHotel(ctx, name, r.URL.Query().Get("city")))
}
