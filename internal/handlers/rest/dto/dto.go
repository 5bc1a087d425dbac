// Package dto — транспортные структуры REST API.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShipmentItem struct {
	ItemCode    string `json:"item_code"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	Unit        string `json:"unit"`
	Warehouse   string `json:"warehouse"`
}

type ShipmentSummary struct {
	ID            string    `json:"id"`
	SalesOrderRef string    `json:"sales_order_ref"`
	CustomerRef   string    `json:"customer_ref"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Shipment struct {
	ID            string           `json:"id"`
	SalesOrderRef string           `json:"sales_order_ref"`
	CustomerRef   string           `json:"customer_ref"`
	Status        string           `json:"status"`
	Priority      string           `json:"priority"`
	Items         []ShipmentItem   `json:"items"`
	Plan          *Plan            `json:"plan,omitempty"`
	Snapshot      *AddressSnapshot `json:"address_snapshot,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type Plan struct {
	ShipmentID            string     `json:"shipment_id"`
	PlannedDispatchDate   *time.Time `json:"planned_dispatch_date,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	Transporter           string     `json:"transporter,omitempty"`
	VehicleNumber         string     `json:"vehicle_number,omitempty"`
	DriverName            string     `json:"driver_name,omitempty"`
	DriverContact         string     `json:"driver_contact,omitempty"`
	PackingStatus         string     `json:"packing_status"`
	SpecialInstructions   string     `json:"special_instructions,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type AddressSnapshot struct {
	ShipmentID      string    `json:"shipment_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerEmail   string    `json:"customer_email"`
	ShippingAddress string    `json:"shipping_address"`
	BillingAddress  string    `json:"billing_address"`
	CapturedAt      time.Time `json:"captured_at"`
}

type ShipmentStatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

type PlanUpdate struct {
	PlannedDispatchDate   *time.Time `json:"planned_dispatch_date"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
	Transporter           *string    `json:"transporter"`
	VehicleNumber         *string    `json:"vehicle_number"`
	DriverName            *string    `json:"driver_name"`
	DriverContact         *string    `json:"driver_contact"`
	PackingStatus         *string    `json:"packing_status"`
	SpecialInstructions   *string    `json:"special_instructions"`
}

type NextAction struct {
	Action            string `json:"action"`
	Target            string `json:"target,omitempty"`
	RequiresCondition bool   `json:"requires_condition,omitempty"`
}

type ReturnItemCreate struct {
	ItemCode string `json:"item_code" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type ReturnCreate struct {
	OriginShipmentID string             `json:"origin_shipment_id" validate:"required"`
	Reason           string             `json:"reason" validate:"required"`
	Items            []ReturnItemCreate `json:"items" validate:"required,min=1,dive"`
}

type ReturnStatusUpdate struct {
	Status          string           `json:"status" validate:"required"`
	ConditionStatus *string          `json:"condition_status"`
	ReceivedDate    *time.Time       `json:"received_date"`
	RefundAmount    *decimal.Decimal `json:"refund_amount"`
}

type ReturnItem struct {
	ItemCode string `json:"item_code"`
	Quantity int64  `json:"quantity"`
}

type ReturnCase struct {
	ID               string           `json:"id"`
	OriginShipmentID string           `json:"origin_shipment_id"`
	Status           string           `json:"status"`
	Reason           string           `json:"reason"`
	Items            []ReturnItem     `json:"items"`
	ConditionStatus  *string          `json:"condition_status,omitempty"`
	ReceivedDate     *time.Time       `json:"received_date,omitempty"`
	RefundAmount     *decimal.Decimal `json:"refund_amount,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
