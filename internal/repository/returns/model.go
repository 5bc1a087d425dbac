package returns

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReturnCaseDB struct {
	ID               string
	OriginShipmentID string
	Status           string
	Reason           string
	ConditionStatus  *string
	ReceivedDate     *time.Time
	RefundAmount     *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ReturnItemDB struct {
	ItemCode string
	Quantity int64
}
