package router

import (
	"tripdesk/internal/handlers/alert"
	"tripdesk/internal/handlers/assistant"
	"tripdesk/internal/handlers/auth"
	"tripdesk/internal/handlers/booking"
	"tripdesk/internal/handlers/client"
	"tripdesk/internal/handlers/document"
	"tripdesk/internal/handlers/inventory"
	"tripdesk/internal/handlers/report"
	"tripdesk/internal/handlers/settings"
	"tripdesk/internal/handlers/supplier"
	"tripdesk/internal/handlers/task"
	"tripdesk/internal/handlers/transaction"
	"tripdesk/internal/handlers/treasury"
	"tripdesk/internal/handlers/user"
	"tripdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Client      client.Handler
	Supplier    supplier.Handler
	Booking     booking.Handler
	Treasury    treasury.Handler
	Transaction transaction.Handler
	Inventory   inventory.Handler
	Report      report.Handler
	Alert       alert.Handler
	Task        task.Handler
	Document    document.Handler
	Settings    settings.Handler
	Assistant   assistant.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	middleware     middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.middleware.APIKey, r.middleware.Auth, r.middleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.Supplier.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Treasury.Router(routerGroup)
		r.DomainHandlers.Transaction.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Alert.Router(routerGroup)
		r.DomainHandlers.Task.Router(routerGroup)
		r.DomainHandlers.Document.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Assistant.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		middleware:     middleware,
	}
}
