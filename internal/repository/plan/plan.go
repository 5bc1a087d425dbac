package plan

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/planning"
	"fulfillment/internal/service/shipment"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetPlan(ctx context.Context, shipmentID string) (*entities.ShipmentPlan, error) {
	query := `SELECT shipment_id, planned_dispatch_date, estimated_delivery_date, transporter,
			vehicle_number, driver_name, driver_contact, packing_status, special_instructions,
			created_at, updated_at
		FROM shipment_plans
		WHERE shipment_id = $1`

	var planDB PlanDB
	err := r.querier.QueryRow(ctx, query, shipmentID).Scan(
		&planDB.ShipmentID,
		&planDB.PlannedDispatchDate,
		&planDB.EstimatedDeliveryDate,
		&planDB.Transporter,
		&planDB.VehicleNumber,
		&planDB.DriverName,
		&planDB.DriverContact,
		&planDB.PackingStatus,
		&planDB.SpecialInstructions,
		&planDB.CreatedAt,
		&planDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, planning.ErrPlanNotFound
		}
		return nil, fmt.Errorf("unexpected plan repository getplan error: %w", err)
	}

	return ToDomain(&planDB), nil
}

// UpsertPlan создаёт запись при первом сохранении и частично обновляет при
// повторных: апдейту подлежат только переданные поля.
func (r *Repository) UpsertPlan(ctx context.Context, planModify entities.ShipmentPlanModify) (*entities.ShipmentPlan, error) {
	shipmentID := ""
	if planModify.ShipmentID != nil {
		shipmentID = *planModify.ShipmentID
	}

	insertQuery := `INSERT INTO shipment_plans (shipment_id, packing_status)
		VALUES ($1, $2)
		ON CONFLICT (shipment_id) DO NOTHING`

	_, err := r.querier.Exec(ctx, insertQuery, shipmentID, entities.DefaultPackingStatus.String())
	if err != nil {
		if repository.IsConcurrencyError(err) {
			return nil, shipment.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected plan repository upsertplan error: %w", err)
	}

	builder := qb.
		Update("shipment_plans").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"shipment_id": shipmentID}).
		Suffix(`RETURNING shipment_id, planned_dispatch_date, estimated_delivery_date, transporter,
			vehicle_number, driver_name, driver_contact, packing_status, special_instructions,
			created_at, updated_at`)

	if planModify.PlannedDispatchDate != nil {
		builder = builder.Set("planned_dispatch_date", *planModify.PlannedDispatchDate)
	}
	if planModify.EstimatedDeliveryDate != nil {
		builder = builder.Set("estimated_delivery_date", *planModify.EstimatedDeliveryDate)
	}
	if planModify.Transporter != nil {
		builder = builder.Set("transporter", *planModify.Transporter)
	}
	if planModify.VehicleNumber != nil {
		builder = builder.Set("vehicle_number", *planModify.VehicleNumber)
	}
	if planModify.DriverName != nil {
		builder = builder.Set("driver_name", *planModify.DriverName)
	}
	if planModify.DriverContact != nil {
		builder = builder.Set("driver_contact", *planModify.DriverContact)
	}
	if planModify.PackingStatus != nil {
		builder = builder.Set("packing_status", planModify.PackingStatus.String())
	}
	if planModify.SpecialInstructions != nil {
		builder = builder.Set("special_instructions", *planModify.SpecialInstructions)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected plan repository upsertplan error: %w", err)
	}

	var planDB PlanDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&planDB.ShipmentID,
		&planDB.PlannedDispatchDate,
		&planDB.EstimatedDeliveryDate,
		&planDB.Transporter,
		&planDB.VehicleNumber,
		&planDB.DriverName,
		&planDB.DriverContact,
		&planDB.PackingStatus,
		&planDB.SpecialInstructions,
		&planDB.CreatedAt,
		&planDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsConcurrencyError(err) {
			return nil, shipment.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected plan repository upsertplan error: %w", err)
	}

	return ToDomain(&planDB), nil
}

func (r *Repository) GetSnapshot(ctx context.Context, shipmentID string) (*entities.AddressSnapshot, error) {
	query := `SELECT shipment_id, customer_name, customer_phone, customer_email,
			shipping_address, billing_address, captured_at
		FROM address_snapshots
		WHERE shipment_id = $1`

	var snapshotDB SnapshotDB
	err := r.querier.QueryRow(ctx, query, shipmentID).Scan(
		&snapshotDB.ShipmentID,
		&snapshotDB.CustomerName,
		&snapshotDB.CustomerPhone,
		&snapshotDB.CustomerEmail,
		&snapshotDB.ShippingAddress,
		&snapshotDB.BillingAddress,
		&snapshotDB.CapturedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, planning.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("unexpected plan repository getsnapshot error: %w", err)
	}

	return SnapshotToDomain(&snapshotDB), nil
}

// CreateSnapshot не перезаписывает существующий слепок: адрес фиксируется один раз.
func (r *Repository) CreateSnapshot(ctx context.Context, snapshot entities.AddressSnapshot) error {
	query := `INSERT INTO address_snapshots (shipment_id, customer_name, customer_phone,
			customer_email, shipping_address, billing_address, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (shipment_id) DO NOTHING`

	_, err := r.querier.Exec(
		ctx,
		query,
		snapshot.ShipmentID,
		snapshot.CustomerName,
		snapshot.CustomerPhone,
		snapshot.CustomerEmail,
		snapshot.ShippingAddress,
		snapshot.BillingAddress,
		snapshot.CapturedAt,
	)
	if err != nil {
		if repository.IsConcurrencyError(err) {
			return shipment.ErrConcurrentModification
		}
		return fmt.Errorf("unexpected plan repository createsnapshot error: %w", err)
	}

	return nil
}
