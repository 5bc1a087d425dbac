package shipment

import (
	"fulfillment/internal/entities"
)

func ToDomain(s *ShipmentDB, items []ShipmentItemDB) *entities.ShipmentOrder {
	if s == nil {
		return nil
	}

	return &entities.ShipmentOrder{
		ID:            s.ID,
		SalesOrderRef: s.SalesOrderRef,
		CustomerRef:   s.CustomerRef,
		Status:        entities.ShipmentStatusType(s.Status),
		Priority:      entities.PriorityType(s.Priority),
		Items:         ToDomainItems(items),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func ToDomainItems(itemsDB []ShipmentItemDB) []entities.ShipmentItem {
	if len(itemsDB) == 0 {
		return []entities.ShipmentItem{}
	}

	result := make([]entities.ShipmentItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		result[i] = entities.ShipmentItem{
			ItemCode:    itemDB.ItemCode,
			Description: itemDB.Description,
			Quantity:    itemDB.Quantity,
			Unit:        itemDB.Unit,
			Warehouse:   itemDB.Warehouse,
		}
	}
	return result
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	shipmentDB := &ShipmentModifyDB{}

	if shipmentModify.ID != nil {
		shipmentDB.ID = shipmentModify.ID
	}
	if shipmentModify.SalesOrderRef != nil {
		shipmentDB.SalesOrderRef = shipmentModify.SalesOrderRef
	}
	if shipmentModify.CustomerRef != nil {
		shipmentDB.CustomerRef = shipmentModify.CustomerRef
	}
	if shipmentModify.Status != nil {
		statusType := shipmentModify.Status.String()
		shipmentDB.Status = &statusType
	}
	if shipmentModify.Priority != nil {
		priorityType := shipmentModify.Priority.String()
		shipmentDB.Priority = &priorityType
	}

	return shipmentDB
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.ShipmentOrder {
	if len(shipmentsDB) == 0 {
		return []entities.ShipmentOrder{}
	}

	result := make([]entities.ShipmentOrder, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB, nil)
	}
	return result
}
