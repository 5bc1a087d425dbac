package next_action

import (
	"errors"
	"fmt"

	"fulfillment/internal/entities"
)

var (
	ErrNoNextAction    = errors.New("no next action for terminal status")
	ErrUndefinedStatus = errors.New("undefined status")
)

// Action — следующее легальное действие для текущего статуса.
// У save_plan нет Target: переход выполняет сервис планирования.
type Action struct {
	Name string
	// Target задан для действий, которые сводятся к переходу статуса.
	Target entities.ShipmentStatusType
	// RequiresCondition: приемка требует condition_status и received_date.
	RequiresCondition bool
	ReturnTarget      entities.ReturnStatusType
}

type ActionFactory struct{}

func New() *ActionFactory {
	return &ActionFactory{}
}

func (f *ActionFactory) ShipmentAction(status entities.ShipmentStatusType) (Action, error) {
	switch status {
	case entities.ShipmentPendingAcceptance:
		return Action{Name: "accept", Target: entities.ShipmentAccepted}, nil
	case entities.ShipmentAccepted:
		return Action{Name: "save_plan"}, nil
	case entities.ShipmentPlanning:
		return Action{Name: "mark_ready", Target: entities.ShipmentReadyToDispatch}, nil
	case entities.ShipmentReadyToDispatch:
		return Action{Name: "dispatch", Target: entities.ShipmentDispatched}, nil
	case entities.ShipmentDispatched:
		return Action{Name: "mark_in_transit", Target: entities.ShipmentInTransit}, nil
	case entities.ShipmentInTransit:
		return Action{Name: "mark_out_for_delivery", Target: entities.ShipmentOutForDelivery}, nil
	case entities.ShipmentOutForDelivery:
		return Action{Name: "mark_delivered", Target: entities.ShipmentDelivered}, nil
	case entities.ShipmentDelivered:
		return Action{Name: "close", Target: entities.ShipmentClosed}, nil
	case entities.ShipmentRejected, entities.ShipmentClosed:
		return Action{}, fmt.Errorf("%w: %s", ErrNoNextAction, status)
	default:
		return Action{}, fmt.Errorf("%w: %s", ErrUndefinedStatus, status)
	}
}

func (f *ActionFactory) ReturnAction(status entities.ReturnStatusType) (Action, error) {
	switch status {
	case entities.ReturnInitiated:
		return Action{Name: "assign_pickup", ReturnTarget: entities.ReturnPickupAssigned}, nil
	case entities.ReturnPickupAssigned:
		return Action{Name: "mark_in_transit", ReturnTarget: entities.ReturnInTransit}, nil
	case entities.ReturnInTransit:
		return Action{Name: "receive", ReturnTarget: entities.ReturnReceived, RequiresCondition: true}, nil
	case entities.ReturnReceived:
		return Action{Name: "complete", ReturnTarget: entities.ReturnCompleted}, nil
	case entities.ReturnCompleted:
		return Action{}, fmt.Errorf("%w: %s", ErrNoNextAction, status)
	default:
		return Action{}, fmt.Errorf("%w: %s", ErrUndefinedStatus, status)
	}
}
