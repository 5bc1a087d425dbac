//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=planning_test
package planning

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	GetPlan(ctx context.Context, shipmentID string) (*entities.ShipmentPlan, error)
	UpsertPlan(ctx context.Context, planModifyEntity entities.ShipmentPlanModify) (*entities.ShipmentPlan, error)

	GetSnapshot(ctx context.Context, shipmentID string) (*entities.AddressSnapshot, error)
	// CreateSnapshot пишет слепок один раз, повторная вставка игнорируется.
	CreateSnapshot(ctx context.Context, snapshot entities.AddressSnapshot) error
}

type CustomerProvider interface {
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
}

type ShipmentProvider interface {
	GetShipment(ctx context.Context, id string) (*entities.ShipmentOrder, error)
	Transition(ctx context.Context, id string, target entities.ShipmentStatusType) (*entities.ShipmentOrder, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
