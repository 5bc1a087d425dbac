//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_planning_patch_test
package shipment_planning_patch

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
	SavePlan(ctx context.Context, shipmentID string, planModify entities.ShipmentPlanModify) (*entities.ShipmentPlan, error)
}
