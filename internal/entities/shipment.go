package entities

import (
	"time"
)

type ShipmentOrder struct {
	ID            string
	SalesOrderRef string
	CustomerRef   string
	Status        ShipmentStatusType
	Priority      PriorityType
	Items         []ShipmentItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ShipmentItem struct {
	ItemCode    string
	Description string
	Quantity    int64
	Unit        string
	Warehouse   string
}

type ShipmentModify struct {
	ID            *string
	SalesOrderRef *string
	CustomerRef   *string
	Status        *ShipmentStatusType
	Priority      *PriorityType
	Items         []ShipmentItem
}

type ShipmentFilter struct {
	Status      *ShipmentStatusType
	CustomerRef *string
}

type ShipmentStatusType string

const (
	ShipmentPendingAcceptance ShipmentStatusType = "pending_acceptance"
	ShipmentAccepted          ShipmentStatusType = "accepted"
	ShipmentRejected          ShipmentStatusType = "rejected"
	ShipmentPlanning          ShipmentStatusType = "planning"
	ShipmentReadyToDispatch   ShipmentStatusType = "ready_to_dispatch"
	ShipmentDispatched        ShipmentStatusType = "dispatched"
	ShipmentInTransit         ShipmentStatusType = "in_transit"
	ShipmentOutForDelivery    ShipmentStatusType = "out_for_delivery"
	ShipmentDelivered         ShipmentStatusType = "delivered"
	ShipmentClosed            ShipmentStatusType = "closed"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// reject доступен только из начального статуса.
var shipmentTransitions = map[ShipmentStatusType][]ShipmentStatusType{
	ShipmentPendingAcceptance: {ShipmentAccepted, ShipmentRejected},
	ShipmentAccepted:          {ShipmentPlanning},
	ShipmentPlanning:          {ShipmentReadyToDispatch},
	ShipmentReadyToDispatch:   {ShipmentDispatched},
	ShipmentDispatched:        {ShipmentInTransit},
	ShipmentInTransit:         {ShipmentOutForDelivery},
	ShipmentOutForDelivery:    {ShipmentDelivered},
	ShipmentDelivered:         {ShipmentClosed},
	ShipmentRejected:          {},
	ShipmentClosed:            {},
}

func (s ShipmentStatusType) IsValid() bool {
	_, ok := shipmentTransitions[s]
	return ok
}

func (s ShipmentStatusType) IsTerminal() bool {
	successors, ok := shipmentTransitions[s]
	return ok && len(successors) == 0
}

func (s ShipmentStatusType) CanTransitionTo(target ShipmentStatusType) bool {
	for _, successor := range shipmentTransitions[s] {
		if successor == target {
			return true
		}
	}
	return false
}

// NextForward — следующий статус основного маршрута.
func (s ShipmentStatusType) NextForward() (ShipmentStatusType, bool) {
	successors := shipmentTransitions[s]
	if len(successors) == 0 {
		return "", false
	}
	return successors[0], true
}

// ReturnableFrom сообщает, допускает ли статус отгрузки открытие возврата.
func (s ShipmentStatusType) ReturnableFrom() bool {
	switch s {
	case ShipmentOutForDelivery, ShipmentDelivered, ShipmentClosed:
		return true
	default:
		return false
	}
}

type PriorityType string

const (
	PriorityLow    PriorityType = "low"
	PriorityNormal PriorityType = "normal"
	PriorityHigh   PriorityType = "high"
	PriorityUrgent PriorityType = "urgent"
)

const DefaultPriority = PriorityNormal

func (p PriorityType) String() string {
	return string(p)
}

func (p PriorityType) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}
