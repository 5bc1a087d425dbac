package plan

import (
	"fulfillment/internal/entities"
)

func ToDomain(p *PlanDB) *entities.ShipmentPlan {
	if p == nil {
		return nil
	}

	return &entities.ShipmentPlan{
		ShipmentID:            p.ShipmentID,
		PlannedDispatchDate:   p.PlannedDispatchDate,
		EstimatedDeliveryDate: p.EstimatedDeliveryDate,
		Transporter:           p.Transporter,
		VehicleNumber:         p.VehicleNumber,
		DriverName:            p.DriverName,
		DriverContact:         p.DriverContact,
		PackingStatus:         entities.PackingStatusType(p.PackingStatus),
		SpecialInstructions:   p.SpecialInstructions,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func SnapshotToDomain(s *SnapshotDB) *entities.AddressSnapshot {
	if s == nil {
		return nil
	}

	return &entities.AddressSnapshot{
		ShipmentID:      s.ShipmentID,
		CustomerName:    s.CustomerName,
		CustomerPhone:   s.CustomerPhone,
		CustomerEmail:   s.CustomerEmail,
		ShippingAddress: s.ShippingAddress,
		BillingAddress:  s.BillingAddress,
		CapturedAt:      s.CapturedAt,
	}
}
