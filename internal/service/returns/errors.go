package returns

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidReturnID       = errors.New("invalid return id")
	ErrInvalidStatus         = errors.New("invalid return status")
	ErrInvalidCondition      = errors.New("invalid condition status")
	ErrInvalidItems          = errors.New("invalid return items")

	ErrReturnNotFound         = errors.New("return case not found")
	ErrInvalidOrigin          = errors.New("origin shipment does not allow returns")
	ErrQuantityExceeded       = errors.New("return quantity exceeds shipped quantity")
	ErrIllegalTransition      = errors.New("illegal return status transition")
	ErrConditionRequired      = errors.New("receiving a return requires condition status and received date")
	ErrConcurrentModification = errors.New("return case modified concurrently")
)
