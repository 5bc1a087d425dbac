//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=returns_test
package returns

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, returnCase entities.ReturnCase) (*entities.ReturnCase, error)
	GetByID(ctx context.Context, id string) (*entities.ReturnCase, error)

	// UpdateStatus — условный апдейт по прочитанному статусу.
	UpdateStatus(ctx context.Context, id string, from, to entities.ReturnStatusType) (*entities.ReturnCase, error)

	// Receive атомарно пишет статус, condition_status, received_date и refund_amount.
	Receive(ctx context.Context, id string, from, to entities.ReturnStatusType, condition entities.ConditionStatusType, receivedDate time.Time, refundAmount *decimal.Decimal) (*entities.ReturnCase, error)

	// GetReturnedQuantities — заявленные количества по позициям, по всем возвратам отгрузки.
	GetReturnedQuantities(ctx context.Context, originShipmentID string) (map[string]int64, error)
}

type ShipmentProvider interface {
	GetShipment(ctx context.Context, id string) (*entities.ShipmentOrder, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
