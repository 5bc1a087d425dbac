package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/planning"
	"github.com/google/uuid"
)

type Shipment struct {
	repository   Repository
	planProvider PlanProvider
	txManager    TxManager
}

func New(repository Repository, planProvider PlanProvider, txManager TxManager) *Shipment {
	return &Shipment{
		repository:   repository,
		planProvider: planProvider,
		txManager:    txManager,
	}
}

// CreateShipment создает отгрузку в pending_acceptance по принятому заказу продажи.
func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.ShipmentOrder, error) {
	if shipmentModify.SalesOrderRef == nil || shipmentModify.CustomerRef == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidRef(*shipmentModify.SalesOrderRef) || !isValidRef(*shipmentModify.CustomerRef) {
		return nil, ErrMissingRequiredFields
	}
	if len(shipmentModify.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidItems)
	}
	for _, item := range shipmentModify.Items {
		if item.ItemCode == "" || item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %q quantity %d", ErrInvalidItems, item.ItemCode, item.Quantity)
		}
	}

	priority := entities.DefaultPriority
	if shipmentModify.Priority != nil {
		if !shipmentModify.Priority.IsValid() {
			return nil, ErrInvalidPriority
		}
		priority = *shipmentModify.Priority
	}

	id := "SHP-" + uuid.NewString()
	initialStatus := entities.ShipmentPendingAcceptance

	shipmentModify.ID = &id
	shipmentModify.Status = &initialStatus
	shipmentModify.Priority = &priority

	var created *entities.ShipmentOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentOrder, err := s.repository.Create(ctx, shipmentModify)
		if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}
		created = shipmentOrder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Transition переводит отгрузку в целевой статус: проверка по только что
// прочитанному статусу, фиксация условным апдейтом по нему же.
func (s *Shipment) Transition(ctx context.Context, id string, target entities.ShipmentStatusType) (*entities.ShipmentOrder, error) {
	if !isValidShipmentID(id) {
		return nil, ErrInvalidShipmentID
	}
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, target)
	}

	var updated *entities.ShipmentOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if !current.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, target)
		}

		if target == entities.ShipmentReadyToDispatch {
			if err := s.checkPlanComplete(ctx, id); err != nil {
				return err
			}
		}

		shipmentOrder, err := s.repository.UpdateStatus(ctx, id, current.Status, target)
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		updated = shipmentOrder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Shipment) GetShipment(ctx context.Context, id string) (*entities.ShipmentOrder, error) {
	if !isValidShipmentID(id) {
		return nil, ErrInvalidShipmentID
	}

	shipmentOrder, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	return shipmentOrder, nil
}

func (s *Shipment) GetShipments(ctx context.Context, filter entities.ShipmentFilter) ([]entities.ShipmentOrder, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *filter.Status)
	}

	shipments, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipments: %w", err)
	}
	return shipments, nil
}

// CloseDeliveredBefore закрывает доставленные отгрузки старше cutoff.
func (s *Shipment) CloseDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ids, err := s.repository.GetDeliveredBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list delivered shipments: %w", err)
	}

	var closed int64
	for _, id := range ids {
		_, err := s.Transition(ctx, id, entities.ShipmentClosed)
		if err != nil {
			// конкурирующий переход не ошибка автозакрытия, просто пропускаем
			if errors.Is(err, ErrConcurrentModification) || errors.Is(err, ErrIllegalTransition) {
				continue
			}
			return closed, err
		}
		closed++
	}
	return closed, nil
}

func (s *Shipment) checkPlanComplete(ctx context.Context, id string) error {
	plan, err := s.planProvider.GetPlan(ctx, id)
	if err != nil {
		if errors.Is(err, planning.ErrPlanNotFound) {
			return fmt.Errorf("%w: no plan saved", ErrPlanIncomplete)
		}
		return fmt.Errorf("get shipment plan: %w", err)
	}
	if !plan.IsComplete() {
		return fmt.Errorf("%w: transporter, vehicle number and planned dispatch date are required", ErrPlanIncomplete)
	}
	return nil
}
