package plan

import "time"

type PlanDB struct {
	ShipmentID            string
	PlannedDispatchDate   *time.Time
	EstimatedDeliveryDate *time.Time
	Transporter           string
	VehicleNumber         string
	DriverName            string
	DriverContact         string
	PackingStatus         string
	SpecialInstructions   string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type SnapshotDB struct {
	ShipmentID      string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	ShippingAddress string
	BillingAddress  string
	CapturedAt      time.Time
}
