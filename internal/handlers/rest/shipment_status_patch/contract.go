//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_patch_test
package shipment_status_patch

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
	Transition(ctx context.Context, id string, target entities.ShipmentStatusType) (*entities.ShipmentOrder, error)
}
