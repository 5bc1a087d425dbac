package planning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
)

type Planning struct {
	repository      Repository
	customers       CustomerProvider
	shipmentService ShipmentProvider
	txManager       TxManager
}

func New(
	repository Repository,
	customers CustomerProvider,
	shipmentService ShipmentProvider,
	txManager TxManager,
) *Planning {
	return &Planning{
		repository:      repository,
		customers:       customers,
		shipmentService: shipmentService,
		txManager:       txManager,
	}
}

// SavePlan сохраняет план. Первое сохранение материализует AddressSnapshot
// и переводит отгрузку accepted -> planning.
func (p *Planning) SavePlan(ctx context.Context, shipmentID string, planModify entities.ShipmentPlanModify) (*entities.ShipmentPlan, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return nil, ErrInvalidShipmentID
	}
	if !planModify.HasFields() {
		return nil, ErrMissingRequiredFields
	}
	if planModify.PackingStatus != nil && !planModify.PackingStatus.IsValid() {
		return nil, ErrInvalidPackingStatus
	}

	var saved *entities.ShipmentPlan
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentOrder, err := p.shipmentService.GetShipment(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		switch shipmentOrder.Status {
		case entities.ShipmentAccepted, entities.ShipmentPlanning:
		default:
			return fmt.Errorf("%w: status %s", ErrInvalidState, shipmentOrder.Status)
		}

		planModify.ShipmentID = &shipmentID
		plan, err := p.repository.UpsertPlan(ctx, planModify)
		if err != nil {
			return fmt.Errorf("save plan: %w", err)
		}

		if err := p.materializeSnapshot(ctx, shipmentOrder); err != nil {
			return err
		}

		if shipmentOrder.Status == entities.ShipmentAccepted {
			if _, err := p.shipmentService.Transition(ctx, shipmentID, entities.ShipmentPlanning); err != nil {
				return fmt.Errorf("enter planning: %w", err)
			}
		}

		saved = plan
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (p *Planning) GetPlan(ctx context.Context, shipmentID string) (*entities.ShipmentPlan, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return nil, ErrInvalidShipmentID
	}

	plan, err := p.repository.GetPlan(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return plan, nil
}

func (p *Planning) GetSnapshot(ctx context.Context, shipmentID string) (*entities.AddressSnapshot, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return nil, ErrInvalidShipmentID
	}

	snapshot, err := p.repository.GetSnapshot(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snapshot, nil
}

// записанный слепок никогда не перечитывается из мастера
func (p *Planning) materializeSnapshot(ctx context.Context, shipmentOrder *entities.ShipmentOrder) error {
	_, err := p.repository.GetSnapshot(ctx, shipmentOrder.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSnapshotNotFound) {
		return fmt.Errorf("get snapshot: %w", err)
	}

	customer, err := p.customers.GetByID(ctx, shipmentOrder.CustomerRef)
	if err != nil {
		return fmt.Errorf("get customer master: %w", err)
	}

	snapshot := entities.AddressSnapshot{
		ShipmentID:      shipmentOrder.ID,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerEmail:   customer.Email,
		ShippingAddress: customer.ShippingAddress,
		BillingAddress:  customer.BillingAddress,
		CapturedAt:      time.Now().UTC(),
	}

	if err := p.repository.CreateSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	return nil
}
