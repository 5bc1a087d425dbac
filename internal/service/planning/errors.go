package planning

import "errors"

var (
	ErrMissingRequiredFields = errors.New("no plan fields to save")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidPackingStatus  = errors.New("invalid packing status")

	ErrInvalidState     = errors.New("shipment does not accept planning changes in its current status")
	ErrPlanNotFound     = errors.New("shipment plan not found")
	ErrSnapshotNotFound = errors.New("address snapshot not found")
	ErrCustomerNotFound = errors.New("customer not found")
)
