//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_next_action_get_test
package shipment_next_action_get

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
	GetShipment(ctx context.Context, id string) (*entities.ShipmentOrder, error)
}
