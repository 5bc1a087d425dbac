package returns

import (
	"fulfillment/internal/entities"
)

func ToDomain(c *ReturnCaseDB, items []ReturnItemDB) *entities.ReturnCase {
	if c == nil {
		return nil
	}

	var condition *entities.ConditionStatusType
	if c.ConditionStatus != nil {
		conditionType := entities.ConditionStatusType(*c.ConditionStatus)
		condition = &conditionType
	}

	return &entities.ReturnCase{
		ID:                c.ID,
		OriginShipmentRef: c.OriginShipmentID,
		Status:            entities.ReturnStatusType(c.Status),
		Reason:            c.Reason,
		ConditionStatus:   condition,
		ReceivedDate:      c.ReceivedDate,
		RefundAmount:      c.RefundAmount,
		Items:             ToDomainItems(items),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func ToDomainItems(items []ReturnItemDB) []entities.ReturnItem {
	result := make([]entities.ReturnItem, 0, len(items))
	for _, item := range items {
		result = append(result, entities.ReturnItem{
			ItemCode: item.ItemCode,
			Quantity: item.Quantity,
		})
	}
	return result
}
