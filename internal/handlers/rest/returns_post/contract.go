//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=returns_post_test
package returns_post

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
	Initiate(ctx context.Context, originShipmentID, reason string, items []entities.ReturnItem) (*entities.ReturnCase, error)
}
