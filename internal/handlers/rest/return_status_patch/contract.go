//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=return_status_patch_test
package return_status_patch

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/shopspring/decimal"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Transition(ctx context.Context, id string, target entities.ReturnStatusType) (*entities.ReturnCase, error)
	Receive(ctx context.Context, id string, condition entities.ConditionStatusType, receivedDate time.Time, refundAmount *decimal.Decimal) (*entities.ReturnCase, error)
}
