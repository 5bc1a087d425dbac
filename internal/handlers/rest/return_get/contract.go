//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=return_get_test
package return_get

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
	GetReturn(ctx context.Context, id string) (*entities.ReturnCase, error)
}
