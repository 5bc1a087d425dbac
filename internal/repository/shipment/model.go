package shipment

import "time"

type ShipmentDB struct {
	ID            string
	SalesOrderRef string
	CustomerRef   string
	Status        string
	Priority      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ShipmentModifyDB struct {
	ID            *string
	SalesOrderRef *string
	CustomerRef   *string
	Status        *string
	Priority      *string
}

type ShipmentItemDB struct {
	ItemCode    string
	Description string
	Quantity    int64
	Unit        string
	Warehouse   string
}
