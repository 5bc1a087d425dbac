package entities

import "time"

type ShipmentPlan struct {
	ShipmentID            string
	PlannedDispatchDate   *time.Time
	EstimatedDeliveryDate *time.Time
	Transporter           string
	VehicleNumber         string
	DriverName            string
	DriverContact         string
	PackingStatus         PackingStatusType
	SpecialInstructions   string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsComplete — обязательный минимум для перехода в ready_to_dispatch.
func (p *ShipmentPlan) IsComplete() bool {
	return p != nil &&
		p.Transporter != "" &&
		p.VehicleNumber != "" &&
		p.PlannedDispatchDate != nil &&
		!p.PlannedDispatchDate.IsZero()
}

type ShipmentPlanModify struct {
	ShipmentID            *string
	PlannedDispatchDate   *time.Time
	EstimatedDeliveryDate *time.Time
	Transporter           *string
	VehicleNumber         *string
	DriverName            *string
	DriverContact         *string
	PackingStatus         *PackingStatusType
	SpecialInstructions   *string
}

func (m *ShipmentPlanModify) HasFields() bool {
	return m.PlannedDispatchDate != nil ||
		m.EstimatedDeliveryDate != nil ||
		m.Transporter != nil ||
		m.VehicleNumber != nil ||
		m.DriverName != nil ||
		m.DriverContact != nil ||
		m.PackingStatus != nil ||
		m.SpecialInstructions != nil
}

type PackingStatusType string

const (
	PackingPending PackingStatusType = "pending"
	PackingPacked  PackingStatusType = "packed"
)

const DefaultPackingStatus = PackingPending

func (p PackingStatusType) String() string {
	return string(p)
}

func (p PackingStatusType) IsValid() bool {
	switch p {
	case PackingPending, PackingPacked:
		return true
	default:
		return false
	}
}

// AddressSnapshot — слепок карточки клиента на момент первого сохранения плана.
type AddressSnapshot struct {
	ShipmentID      string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	ShippingAddress string
	BillingAddress  string
	CapturedAt      time.Time
}
