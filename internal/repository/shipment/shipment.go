package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
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

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.ShipmentOrder, error) {
	shipmentModifyDB := FromDomainModify(&shipmentModifyEntity)

	query := `INSERT INTO shipments (id, sales_order_ref, customer_ref, status, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sales_order_ref, customer_ref, status, priority, created_at, updated_at`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyDB.ID,
		shipmentModifyDB.SalesOrderRef,
		shipmentModifyDB.CustomerRef,
		shipmentModifyDB.Status,
		shipmentModifyDB.Priority,
	).Scan(
		&shipmentDB.ID,
		&shipmentDB.SalesOrderRef,
		&shipmentDB.CustomerRef,
		&shipmentDB.Status,
		&shipmentDB.Priority,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrShipmentExists
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	itemsQuery := `INSERT INTO shipment_items (shipment_id, item_code, description, quantity, unit, warehouse)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, item := range shipmentModifyEntity.Items {
		_, err := r.querier.Exec(
			ctx,
			itemsQuery,
			shipmentDB.ID,
			item.ItemCode,
			item.Description,
			item.Quantity,
			item.Unit,
			item.Warehouse,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository create items error: %w", err)
		}
	}

	itemsDB, err := r.getItems(ctx, shipmentDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&shipmentDB, itemsDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.ShipmentOrder, error) {
	query := `SELECT id, sales_order_ref, customer_ref, status, priority, created_at, updated_at
		FROM shipments
		WHERE id = $1`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&shipmentDB.ID,
		&shipmentDB.SalesOrderRef,
		&shipmentDB.CustomerRef,
		&shipmentDB.Status,
		&shipmentDB.Priority,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&shipmentDB, itemsDB), nil
}

// GetAll возвращает сводки без позиций, фильтры опциональны.
func (r *Repository) GetAll(ctx context.Context, filter entities.ShipmentFilter) ([]entities.ShipmentOrder, error) {
	builder := qb.
		Select("id", "sales_order_ref", "customer_ref", "status", "priority", "created_at", "updated_at").
		From("shipments").
		OrderBy("created_at DESC, id")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.CustomerRef != nil {
		builder = builder.Where(sq.Eq{"customer_ref": *filter.CustomerRef})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}
	defer rows.Close()

	shipmentsDB := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentDB ShipmentDB
		err := rows.Scan(
			&shipmentDB.ID,
			&shipmentDB.SalesOrderRef,
			&shipmentDB.CustomerRef,
			&shipmentDB.Status,
			&shipmentDB.Priority,
			&shipmentDB.CreatedAt,
			&shipmentDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
		}
		shipmentsDB = append(shipmentsDB, shipmentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	return ToDomainList(shipmentsDB), nil
}

// UpdateStatus — условный апдейт по статусу, прочитанному вызывающей
// стороной; ноль строк при живой записи — проигранная гонка.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to entities.ShipmentStatusType) (*entities.ShipmentOrder, error) {
	query := `UPDATE shipments
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING id, sales_order_ref, customer_ref, status, priority, created_at, updated_at`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, id, to.String(), from.String()).Scan(
		&shipmentDB.ID,
		&shipmentDB.SalesOrderRef,
		&shipmentDB.CustomerRef,
		&shipmentDB.Status,
		&shipmentDB.Priority,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, id)
		}
		if repository.IsConcurrencyError(err) {
			return nil, shipment.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&shipmentDB, itemsDB), nil
}

func (r *Repository) GetDeliveredBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `SELECT id FROM shipments
		WHERE status = $1 AND updated_at <= $2
		ORDER BY updated_at`

	rows, err := r.querier.Query(ctx, query, entities.ShipmentDelivered.String(), cutoff)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getdeliveredbefore error: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, 8)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getdeliveredbefore error: %w", err)
		}
		ids = append(ids, id)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getdeliveredbefore error: %w", err)
	}

	return ids, nil
}

func (r *Repository) getItems(ctx context.Context, shipmentID string) ([]ShipmentItemDB, error) {
	query := `SELECT item_code, description, quantity, unit, warehouse
		FROM shipment_items
		WHERE shipment_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getitems error: %w", err)
	}
	defer rows.Close()

	itemsDB := make([]ShipmentItemDB, 0, 4)
	for rows.Next() {
		var itemDB ShipmentItemDB
		err := rows.Scan(
			&itemDB.ItemCode,
			&itemDB.Description,
			&itemDB.Quantity,
			&itemDB.Unit,
			&itemDB.Warehouse,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getitems error: %w", err)
		}
		itemsDB = append(itemsDB, itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getitems error: %w", err)
	}

	return itemsDB, nil
}

// classifyMissedUpdate различает пропавшую запись и проигранную гонку.
func (r *Repository) classifyMissedUpdate(ctx context.Context, id string) error {
	var status string
	err := r.querier.QueryRow(ctx, `SELECT status FROM shipments WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shipment.ErrShipmentNotFound
		}
		if repository.IsConcurrencyError(err) {
			return shipment.ErrConcurrentModification
		}
		return fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}
	return shipment.ErrConcurrentModification
}
