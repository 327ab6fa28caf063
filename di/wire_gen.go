// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"tripdesk/config"
	"tripdesk/infras/genai"
	"tripdesk/infras/jwt"
	"tripdesk/infras/kafka"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/infras/redis"
	"tripdesk/infras/s3"
	service11 "tripdesk/internal/domains/alert/service"
	service14 "tripdesk/internal/domains/assistant/service"
	"tripdesk/internal/domains/auth/service"
	repository3 "tripdesk/internal/domains/booking/repository"
	service6 "tripdesk/internal/domains/booking/service"
	repository2 "tripdesk/internal/domains/client/repository"
	service3 "tripdesk/internal/domains/client/service"
	repository10 "tripdesk/internal/domains/document/repository"
	service13 "tripdesk/internal/domains/document/service"
	repository7 "tripdesk/internal/domains/inventory/repository"
	service9 "tripdesk/internal/domains/inventory/service"
	service10 "tripdesk/internal/domains/report/service"
	repository8 "tripdesk/internal/domains/settings/repository"
	service5 "tripdesk/internal/domains/settings/service"
	repository4 "tripdesk/internal/domains/supplier/repository"
	service4 "tripdesk/internal/domains/supplier/service"
	repository9 "tripdesk/internal/domains/task/repository"
	service12 "tripdesk/internal/domains/task/service"
	repository5 "tripdesk/internal/domains/transaction/repository"
	service8 "tripdesk/internal/domains/transaction/service"
	repository6 "tripdesk/internal/domains/treasury/repository"
	service7 "tripdesk/internal/domains/treasury/service"
	"tripdesk/internal/domains/user/repository"
	service2 "tripdesk/internal/domains/user/service"
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
	"tripdesk/permissions"
	"tripdesk/shared/cache"
	"tripdesk/transport/http"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/router"
	"tripdesk/transport/worker"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	redisClient := redis.New(configConfig)
	redisCache := cache.NewRedisCache(redisClient, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryClient := repository2.New(connection, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	serviceClient := service3.New(repositoryClient, repositoryBooking, configConfig, redisCache, otelOtel)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	clientHandler := client.New(serviceClient, authRole, otelOtel)
	repositorySupplier := repository4.New(connection, otelOtel)
	repositoryTransaction := repository5.New(connection, otelOtel)
	serviceSupplier := service4.New(repositorySupplier, repositoryTransaction, configConfig, redisCache, otelOtel)
	supplierHandler := supplier.New(serviceSupplier, authRole, otelOtel)
	repositoryService := repository3.NewService(connection, otelOtel)
	passenger := repository3.NewPassenger(connection, otelOtel)
	payment := repository3.NewPayment(connection, otelOtel)
	repositoryTreasury := repository6.New(connection, otelOtel)
	repositoryInventory := repository7.New(connection, otelOtel)
	repositorySettings := repository8.New(connection, otelOtel)
	serviceSettings := service5.New(repositorySettings, configConfig, redisCache, otelOtel)
	serviceBooking := service6.New(repositoryBooking, repositoryService, passenger, payment, repositoryTreasury, repositoryTransaction, repositoryInventory, serviceSettings, connection, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, authRole, otelOtel)
	serviceTreasury := service7.New(repositoryTreasury, repositoryTransaction, serviceSettings, connection, configConfig, redisCache, otelOtel)
	treasuryHandler := treasury.New(serviceTreasury, authRole, otelOtel)
	serviceTransaction := service8.New(repositoryTransaction, repositoryTreasury, serviceSettings, connection, configConfig, redisCache, otelOtel)
	transactionHandler := transaction.New(serviceTransaction, authRole, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceInventory := service9.New(repositoryInventory, repositoryService, repositoryBooking, kafkaClient, configConfig, redisCache, otelOtel)
	inventoryHandler := inventory.New(serviceInventory, authRole, otelOtel)
	serviceReport := service10.New(repositoryBooking, repositoryTransaction, serviceSettings, configConfig, otelOtel)
	reportHandler := report.New(serviceReport, authRole, otelOtel)
	serviceAlert := service11.New(repositoryBooking, repositoryService, passenger, otelOtel)
	alertHandler := alert.New(serviceAlert, authRole, otelOtel)
	repositoryTask := repository9.New(connection, otelOtel)
	serviceTask := service12.New(repositoryTask, configConfig, otelOtel)
	taskHandler := task.New(serviceTask, authRole, otelOtel)
	repositoryDocument := repository10.New(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceDocument := service13.New(repositoryDocument, configConfig, otelOtel, s3S3)
	documentHandler := document.New(serviceDocument, authRole, otelOtel)
	settingsHandler := settings.New(serviceSettings, authRole, otelOtel)
	genaiClient := genai.New(configConfig)
	serviceAssistant := service14.New(genaiClient, repositoryBooking, repositoryTransaction, repositoryTreasury, configConfig, otelOtel)
	assistantHandler := assistant.New(serviceAssistant, authRole, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:        handler,
		User:        userHandler,
		Client:      clientHandler,
		Supplier:    supplierHandler,
		Booking:     bookingHandler,
		Treasury:    treasuryHandler,
		Transaction: transactionHandler,
		Inventory:   inventoryHandler,
		Report:      reportHandler,
		Alert:       alertHandler,
		Task:        taskHandler,
		Document:    documentHandler,
		Settings:    settingsHandler,
		Assistant:   assistantHandler,
	}
	routerRouter := router.New(domainHandlers, authRole)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

func InitializeWorker() *worker.Worker {
	configConfig := config.Get()
	kafkaClient := kafka.New(configConfig)
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryBooking := repository3.New(connection, otelOtel)
	repositoryService := repository3.NewService(connection, otelOtel)
	passenger := repository3.NewPassenger(connection, otelOtel)
	payment := repository3.NewPayment(connection, otelOtel)
	repositoryTreasury := repository6.New(connection, otelOtel)
	repositoryTransaction := repository5.New(connection, otelOtel)
	repositoryInventory := repository7.New(connection, otelOtel)
	repositorySettings := repository8.New(connection, otelOtel)
	redisClient := redis.New(configConfig)
	redisCache := cache.NewRedisCache(redisClient, otelOtel)
	serviceSettings := service5.New(repositorySettings, configConfig, redisCache, otelOtel)
	serviceBooking := service6.New(repositoryBooking, repositoryService, passenger, payment, repositoryTreasury, repositoryTransaction, repositoryInventory, serviceSettings, connection, configConfig, redisCache, otelOtel)
	workerWorker := worker.New(configConfig, kafkaClient, serviceBooking)
	return workerWorker
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New, genai.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var authDomain = wire.NewSet(repository.New, service.New, service2.New)

var clientDomain = wire.NewSet(repository2.New, service3.New)

var supplierDomain = wire.NewSet(repository4.New, service4.New)

var bookingDomain = wire.NewSet(repository3.New, repository3.NewService, repository3.NewPassenger, repository3.NewPayment, service6.New)

var treasuryDomain = wire.NewSet(repository6.New, service7.New)

var transactionDomain = wire.NewSet(repository5.New, service8.New)

var inventoryDomain = wire.NewSet(repository7.New, service9.New)

var settingsDomain = wire.NewSet(repository8.New, service5.New)

var reportDomain = wire.NewSet(service10.New)

var alertDomain = wire.NewSet(service11.New)

var taskDomain = wire.NewSet(repository9.New, service12.New)

var documentDomain = wire.NewSet(repository10.New, service13.New)

var assistantDomain = wire.NewSet(service14.New)

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

var routing = wire.NewSet(router.New, wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, client.New, supplier.New, booking.New, treasury.New, transaction.New, inventory.New, report.New, alert.New, task.New, document.New, settings.New, assistant.New)
