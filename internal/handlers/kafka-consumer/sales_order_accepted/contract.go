//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sales_order_accepted_test
package sales_order_accepted

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.ShipmentOrder, error)
}
