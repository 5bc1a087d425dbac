package returns

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Returns struct {
	repository      Repository
	shipmentService ShipmentProvider
	txManager       TxManager
}

func New(repository Repository, shipmentService ShipmentProvider, txManager TxManager) *Returns {
	return &Returns{
		repository:      repository,
		shipmentService: shipmentService,
		txManager:       txManager,
	}
}

// Initiate открывает возврат; количества проверяются накопительно по всем
// возвратам этой отгрузки.
func (r *Returns) Initiate(ctx context.Context, originShipmentID, reason string, items []entities.ReturnItem) (*entities.ReturnCase, error) {
	if strings.TrimSpace(originShipmentID) == "" || strings.TrimSpace(reason) == "" {
		return nil, ErrMissingRequiredFields
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidItems)
	}
	for _, item := range items {
		if item.ItemCode == "" || item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %q quantity %d", ErrInvalidItems, item.ItemCode, item.Quantity)
		}
	}

	var created *entities.ReturnCase
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		origin, err := r.shipmentService.GetShipment(ctx, originShipmentID)
		if err != nil {
			return fmt.Errorf("get origin shipment: %w", err)
		}

		if !origin.Status.ReturnableFrom() {
			return fmt.Errorf("%w: status %s", ErrInvalidOrigin, origin.Status)
		}

		if err := r.checkQuantities(ctx, origin, items); err != nil {
			return err
		}

		returnCase := entities.ReturnCase{
			ID:                "RET-" + uuid.NewString(),
			OriginShipmentRef: originShipmentID,
			Status:            entities.ReturnInitiated,
			Reason:            reason,
			Items:             items,
		}

		saved, err := r.repository.Create(ctx, returnCase)
		if err != nil {
			return fmt.Errorf("create return case: %w", err)
		}

		created = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Transition продвигает возврат по цепочке. Переход в return_received
// выполняется только через Receive.
func (r *Returns) Transition(ctx context.Context, id string, target entities.ReturnStatusType) (*entities.ReturnCase, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidReturnID
	}
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, target)
	}
	if target == entities.ReturnReceived {
		return nil, ErrConditionRequired
	}

	var updated *entities.ReturnCase
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := r.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get return case: %w", err)
		}

		if !current.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, target)
		}

		returnCase, err := r.repository.UpdateStatus(ctx, id, current.Status, target)
		if err != nil {
			return fmt.Errorf("update return status: %w", err)
		}

		updated = returnCase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Receive одним апдейтом фиксирует condition_status, received_date,
// refund_amount и переход в return_received.
func (r *Returns) Receive(ctx context.Context, id string, condition entities.ConditionStatusType, receivedDate time.Time, refundAmount *decimal.Decimal) (*entities.ReturnCase, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidReturnID
	}
	if !condition.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCondition, condition)
	}
	if receivedDate.IsZero() {
		return nil, fmt.Errorf("%w: received date is required", ErrMissingRequiredFields)
	}
	if refundAmount != nil && refundAmount.IsNegative() {
		return nil, fmt.Errorf("%w: refund amount is negative", ErrMissingRequiredFields)
	}

	var updated *entities.ReturnCase
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := r.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get return case: %w", err)
		}

		if !current.Status.CanTransitionTo(entities.ReturnReceived) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, entities.ReturnReceived)
		}

		returnCase, err := r.repository.Receive(ctx, id, current.Status, entities.ReturnReceived, condition, receivedDate, refundAmount)
		if err != nil {
			return fmt.Errorf("receive return: %w", err)
		}

		updated = returnCase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Returns) GetReturn(ctx context.Context, id string) (*entities.ReturnCase, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidReturnID
	}

	returnCase, err := r.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get return case: %w", err)
	}
	return returnCase, nil
}

// requested + уже заявленное не должно превышать отгруженное; неизвестная
// позиция — ноль отгруженного.
func (r *Returns) checkQuantities(ctx context.Context, origin *entities.ShipmentOrder, items []entities.ReturnItem) error {
	shipped := make(map[string]int64, len(origin.Items))
	for _, item := range origin.Items {
		shipped[item.ItemCode] += item.Quantity
	}

	returned, err := r.repository.GetReturnedQuantities(ctx, origin.ID)
	if err != nil {
		return fmt.Errorf("get returned quantities: %w", err)
	}

	requested := make(map[string]int64, len(items))
	for _, item := range items {
		requested[item.ItemCode] += item.Quantity
	}

	for itemCode, quantity := range requested {
		if quantity+returned[itemCode] > shipped[itemCode] {
			return fmt.Errorf("%w: item %s requested %d, already returned %d, shipped %d",
				ErrQuantityExceeded, itemCode, quantity, returned[itemCode], shipped[itemCode])
		}
	}
	return nil
}
