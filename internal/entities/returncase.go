package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReturnCase struct {
	ID                string
	OriginShipmentRef string
	Status            ReturnStatusType
	Reason            string
	Items             []ReturnItem
	ConditionStatus   *ConditionStatusType
	ReceivedDate      *time.Time
	RefundAmount      *decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ReturnItem struct {
	ItemCode string
	Quantity int64
}

type ReturnStatusType string

const (
	ReturnInitiated      ReturnStatusType = "return_initiated"
	ReturnPickupAssigned ReturnStatusType = "return_pickup_assigned"
	ReturnInTransit      ReturnStatusType = "return_in_transit"
	ReturnReceived       ReturnStatusType = "return_received"
	ReturnCompleted      ReturnStatusType = "return_completed"
)

func (s ReturnStatusType) String() string {
	return string(s)
}

// returnTransitions — линейная цепочка без пропусков и откатов.
var returnTransitions = map[ReturnStatusType]ReturnStatusType{
	ReturnInitiated:      ReturnPickupAssigned,
	ReturnPickupAssigned: ReturnInTransit,
	ReturnInTransit:      ReturnReceived,
	ReturnReceived:       ReturnCompleted,
	ReturnCompleted:      "",
}

func (s ReturnStatusType) IsValid() bool {
	_, ok := returnTransitions[s]
	return ok
}

func (s ReturnStatusType) IsTerminal() bool {
	next, ok := returnTransitions[s]
	return ok && next == ""
}

func (s ReturnStatusType) Next() (ReturnStatusType, bool) {
	next, ok := returnTransitions[s]
	if !ok || next == "" {
		return "", false
	}
	return next, true
}

func (s ReturnStatusType) CanTransitionTo(target ReturnStatusType) bool {
	next, ok := s.Next()
	return ok && next == target
}

type ConditionStatusType string

const (
	ConditionGood      ConditionStatusType = "good"
	ConditionDamaged   ConditionStatusType = "damaged"
	ConditionWrongItem ConditionStatusType = "wrong_item"
	ConditionCancelled ConditionStatusType = "cancelled"
)

func (c ConditionStatusType) String() string {
	return string(c)
}

func (c ConditionStatusType) IsValid() bool {
	switch c {
	case ConditionGood, ConditionDamaged, ConditionWrongItem, ConditionCancelled:
		return true
	default:
		return false
	}
}
