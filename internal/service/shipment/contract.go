//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"fulfillment/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.ShipmentOrder, error)
	GetByID(ctx context.Context, id string) (*entities.ShipmentOrder, error)
	GetAll(ctx context.Context, filter entities.ShipmentFilter) ([]entities.ShipmentOrder, error)

	// UpdateStatus — условный апдейт по from-статусу; ноль строк при
	// живой записи — ErrConcurrentModification.
	UpdateStatus(ctx context.Context, id string, from, to entities.ShipmentStatusType) (*entities.ShipmentOrder, error)

	GetDeliveredBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}

type PlanProvider interface {
	GetPlan(ctx context.Context, shipmentID string) (*entities.ShipmentPlan, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
