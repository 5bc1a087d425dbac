//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	return_get "fulfillment/internal/handlers/rest/return_get"
	return_next_action_get "fulfillment/internal/handlers/rest/return_next_action_get"
	return_status_patch "fulfillment/internal/handlers/rest/return_status_patch"
	returns_post "fulfillment/internal/handlers/rest/returns_post"
	shipment_get "fulfillment/internal/handlers/rest/shipment_get"
	shipment_next_action_get "fulfillment/internal/handlers/rest/shipment_next_action_get"
	shipment_planning_patch "fulfillment/internal/handlers/rest/shipment_planning_patch"
	shipment_status_patch "fulfillment/internal/handlers/rest/shipment_status_patch"
	shipments_get "fulfillment/internal/handlers/rest/shipments_get"
	"fulfillment/internal/handlers/tasks/shipment_autoclose"
	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/next_action"

	customerRepo "fulfillment/internal/repository/customer"
	planRepo "fulfillment/internal/repository/plan"
	returnsRepo "fulfillment/internal/repository/returns"
	shipmentRepo "fulfillment/internal/repository/shipment"
	planningService "fulfillment/internal/service/planning"
	returnsService "fulfillment/internal/service/returns"
	shipmentService "fulfillment/internal/service/shipment"

	"fulfillment/pkg/background"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/querier"
	"fulfillment/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	AutocloseInterval time.Duration
	AutocloseAge      time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServicePlanning   ServicePlanning
	ServiceReturns    ServiceReturns
	ActionFactory     *next_action.ActionFactory
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipments_get.Service
	shipment_get.Service
	shipment_status_patch.Service
	shipment_next_action_get.Service
}

type ServicePlanning interface {
	shipment_planning_patch.Service
	shipment_get.PlanService
}

type ServiceReturns interface {
	returns_post.Service
	return_status_patch.Service
	return_get.Service
	return_next_action_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAutocloseInterval,
		provideAutocloseAge,

		provideShipmentRepository,
		providePlanRepository,
		provideReturnsRepository,
		provideCustomerRepository,

		provideServiceShipment,
		provideServicePlanning,
		provideServiceReturns,
		next_action.New,

		provideShipmentAutocloseTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServicePlanning), new(*planningService.Planning)),
		wire.Bind(new(ServiceReturns), new(*returnsService.Returns)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.PlanProvider), new(*planRepo.Repository)),
		wire.Bind(new(planningService.Repository), new(*planRepo.Repository)),
		wire.Bind(new(planningService.CustomerProvider), new(*customerRepo.Repository)),
		wire.Bind(new(planningService.ShipmentProvider), new(*shipmentService.Shipment)),
		wire.Bind(new(returnsService.Repository), new(*returnsRepo.Repository)),
		wire.Bind(new(returnsService.ShipmentProvider), new(*shipmentService.Shipment)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(planningService.TxManager), new(*tx.Manager)),
		wire.Bind(new(returnsService.TxManager), new(*tx.Manager)),

		wire.Bind(new(shipment_autoclose.Service), new(*shipmentService.Shipment)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Shipment
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-sales-order-accepted)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,
		providePlanRepository,

		provideServiceShipment,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.PlanProvider), new(*planRepo.Repository)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func providePlanRepository(querier *querier.Querier) *planRepo.Repository {
	return planRepo.New(querier)
}

func provideReturnsRepository(querier *querier.Querier) *returnsRepo.Repository {
	return returnsRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	planProvider shipmentService.PlanProvider,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, planProvider, txManager)
}

func provideServicePlanning(
	repository planningService.Repository,
	customers planningService.CustomerProvider,
	shipments planningService.ShipmentProvider,
	txManager planningService.TxManager,
) *planningService.Planning {
	return planningService.New(repository, customers, shipments, txManager)
}

func provideServiceReturns(
	repository returnsService.Repository,
	shipments returnsService.ShipmentProvider,
	txManager returnsService.TxManager,
) *returnsService.Returns {
	return returnsService.New(repository, shipments, txManager)
}

func provideAutocloseInterval(cfg *config.Config) AutocloseInterval {
	return AutocloseInterval(cfg.Tasks.ShipmentAutocloseInterval)
}

func provideAutocloseAge(cfg *config.Config) AutocloseAge {
	return AutocloseAge(cfg.Tasks.ShipmentAutocloseAge)
}

func provideShipmentAutocloseTask(
	log logger.Logger,
	shipments shipment_autoclose.Service,
	interval AutocloseInterval,
	age AutocloseAge,
) *shipment_autoclose.ShipmentAutoclose {
	return shipment_autoclose.NewShipmentAutoclose(log, shipments, time.Duration(interval), time.Duration(age))
}

func provideTaskList(
	shipmentAutocloseTask *shipment_autoclose.ShipmentAutoclose,
) []background.Task {
	return []background.Task{
		shipmentAutocloseTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
