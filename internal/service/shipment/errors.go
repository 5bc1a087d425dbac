package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidStatus         = errors.New("invalid shipment status")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidItems          = errors.New("invalid shipment items")

	ErrShipmentNotFound       = errors.New("shipment not found")
	ErrShipmentExists         = errors.New("shipment already exists for sales order")
	ErrIllegalTransition      = errors.New("illegal status transition")
	ErrPlanIncomplete         = errors.New("shipment plan is incomplete")
	ErrConcurrentModification = errors.New("shipment modified concurrently")
)
