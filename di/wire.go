//go:build wireinject
// +build wireinject

package di

import (
	"tripdesk/config"
	"tripdesk/infras/genai"
	"tripdesk/infras/jwt"
	"tripdesk/infras/kafka"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/infras/redis"
	"tripdesk/infras/s3"
	"tripdesk/permissions"
	"tripdesk/shared/cache"
	"tripdesk/transport/http"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/router"
	"tripdesk/transport/worker"

	"github.com/google/wire"

	alertService "tripdesk/internal/domains/alert/service"
	assistantService "tripdesk/internal/domains/assistant/service"
	authService "tripdesk/internal/domains/auth/service"
	bookingRepository "tripdesk/internal/domains/booking/repository"
	bookingService "tripdesk/internal/domains/booking/service"
	clientRepository "tripdesk/internal/domains/client/repository"
	clientService "tripdesk/internal/domains/client/service"
	documentRepository "tripdesk/internal/domains/document/repository"
	documentService "tripdesk/internal/domains/document/service"
	inventoryRepository "tripdesk/internal/domains/inventory/repository"
	inventoryService "tripdesk/internal/domains/inventory/service"
	reportService "tripdesk/internal/domains/report/service"
	settingsRepository "tripdesk/internal/domains/settings/repository"
	settingsService "tripdesk/internal/domains/settings/service"
	supplierRepository "tripdesk/internal/domains/supplier/repository"
	supplierService "tripdesk/internal/domains/supplier/service"
	taskRepository "tripdesk/internal/domains/task/repository"
	taskService "tripdesk/internal/domains/task/service"
	transactionRepository "tripdesk/internal/domains/transaction/repository"
	transactionService "tripdesk/internal/domains/transaction/service"
	treasuryRepository "tripdesk/internal/domains/treasury/repository"
	treasuryService "tripdesk/internal/domains/treasury/service"
	userRepository "tripdesk/internal/domains/user/repository"
	userService "tripdesk/internal/domains/user/service"

	alertHandler "tripdesk/internal/handlers/alert"
	assistantHandler "tripdesk/internal/handlers/assistant"
	authHandler "tripdesk/internal/handlers/auth"
	bookingHandler "tripdesk/internal/handlers/booking"
	clientHandler "tripdesk/internal/handlers/client"
	documentHandler "tripdesk/internal/handlers/document"
	inventoryHandler "tripdesk/internal/handlers/inventory"
	reportHandler "tripdesk/internal/handlers/report"
	settingsHandler "tripdesk/internal/handlers/settings"
	supplierHandler "tripdesk/internal/handlers/supplier"
	taskHandler "tripdesk/internal/handlers/task"
	transactionHandler "tripdesk/internal/handlers/transaction"
	treasuryHandler "tripdesk/internal/handlers/treasury"
	userHandler "tripdesk/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	genai.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var supplierDomain = wire.NewSet(
	supplierRepository.New,
	supplierService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewService,
	bookingRepository.NewPassenger,
	bookingRepository.NewPayment,
	bookingService.New,
)

var treasuryDomain = wire.NewSet(
	treasuryRepository.New,
	treasuryService.New,
)

var transactionDomain = wire.NewSet(
	transactionRepository.New,
	transactionService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var alertDomain = wire.NewSet(
	alertService.New,
)

var taskDomain = wire.NewSet(
	taskRepository.New,
	taskService.New,
)

var documentDomain = wire.NewSet(
	documentRepository.New,
	documentService.New,
)

var assistantDomain = wire.NewSet(
	assistantService.New,
)

var domains = wire.NewSet(
	authDomain,
	clientDomain,
	supplierDomain,
	bookingDomain,
	treasuryDomain,
	transactionDomain,
	inventoryDomain,
	settingsDomain,
	reportDomain,
	alertDomain,
	taskDomain,
	documentDomain,
	assistantDomain,
)

var routing = wire.NewSet(
	router.New,
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	clientHandler.New,
	supplierHandler.New,
	bookingHandler.New,
	treasuryHandler.New,
	transactionHandler.New,
	inventoryHandler.New,
	reportHandler.New,
	alertHandler.New,
	taskHandler.New,
	documentHandler.New,
	settingsHandler.New,
	assistantHandler.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		kafka.New,
		sharedHelpers,
		settingsDomain,
		bookingDomain,
		inventoryRepository.New,
		treasuryRepository.New,
		transactionRepository.New,
		worker.New,
	)

	return &worker.Worker{}
}
