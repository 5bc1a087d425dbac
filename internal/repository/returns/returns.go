package returns

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/returns"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, returnCase entities.ReturnCase) (*entities.ReturnCase, error) {
	query := `INSERT INTO return_cases (id, origin_shipment_id, status, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, origin_shipment_id, status, reason, condition_status,
			received_date, refund_amount, created_at, updated_at`

	var caseDB ReturnCaseDB
	err := r.querier.QueryRow(
		ctx,
		query,
		returnCase.ID,
		returnCase.OriginShipmentRef,
		returnCase.Status.String(),
		returnCase.Reason,
	).Scan(
		&caseDB.ID,
		&caseDB.OriginShipmentID,
		&caseDB.Status,
		&caseDB.Reason,
		&caseDB.ConditionStatus,
		&caseDB.ReceivedDate,
		&caseDB.RefundAmount,
		&caseDB.CreatedAt,
		&caseDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected returns repository create error: %w", err)
	}

	itemsQuery := `INSERT INTO return_items (return_id, item_code, quantity)
		VALUES ($1, $2, $3)`

	for _, item := range returnCase.Items {
		_, err := r.querier.Exec(ctx, itemsQuery, caseDB.ID, item.ItemCode, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("unexpected returns repository create items error: %w", err)
		}
	}

	itemsDB, err := r.getItems(ctx, caseDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&caseDB, itemsDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.ReturnCase, error) {
	query := `SELECT id, origin_shipment_id, status, reason, condition_status,
			received_date, refund_amount, created_at, updated_at
		FROM return_cases
		WHERE id = $1`

	var caseDB ReturnCaseDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&caseDB.ID,
		&caseDB.OriginShipmentID,
		&caseDB.Status,
		&caseDB.Reason,
		&caseDB.ConditionStatus,
		&caseDB.ReceivedDate,
		&caseDB.RefundAmount,
		&caseDB.CreatedAt,
		&caseDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, returns.ErrReturnNotFound
		}
		return nil, fmt.Errorf("unexpected returns repository getbyid error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&caseDB, itemsDB), nil
}

// UpdateStatus — условный апдейт по прочитанному статусу, как и у отгрузок.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to entities.ReturnStatusType) (*entities.ReturnCase, error) {
	query := `UPDATE return_cases
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING id, origin_shipment_id, status, reason, condition_status,
			received_date, refund_amount, created_at, updated_at`

	var caseDB ReturnCaseDB
	err := r.querier.QueryRow(ctx, query, id, to.String(), from.String()).Scan(
		&caseDB.ID,
		&caseDB.OriginShipmentID,
		&caseDB.Status,
		&caseDB.Reason,
		&caseDB.ConditionStatus,
		&caseDB.ReceivedDate,
		&caseDB.RefundAmount,
		&caseDB.CreatedAt,
		&caseDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, id)
		}
		if repository.IsConcurrencyError(err) {
			return nil, returns.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected returns repository updatestatus error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&caseDB, itemsDB), nil
}

// Receive фиксирует приёмку одним атомарным апдейтом.
func (r *Repository) Receive(
	ctx context.Context,
	id string,
	from, to entities.ReturnStatusType,
	condition entities.ConditionStatusType,
	receivedDate time.Time,
	refundAmount *decimal.Decimal,
) (*entities.ReturnCase, error) {
	query := `UPDATE return_cases
		SET status = $2, condition_status = $3, received_date = $4, refund_amount = $5, updated_at = NOW()
		WHERE id = $1 AND status = $6
		RETURNING id, origin_shipment_id, status, reason, condition_status,
			received_date, refund_amount, created_at, updated_at`

	var caseDB ReturnCaseDB
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		to.String(),
		condition.String(),
		receivedDate,
		refundAmount,
		from.String(),
	).Scan(
		&caseDB.ID,
		&caseDB.OriginShipmentID,
		&caseDB.Status,
		&caseDB.Reason,
		&caseDB.ConditionStatus,
		&caseDB.ReceivedDate,
		&caseDB.RefundAmount,
		&caseDB.CreatedAt,
		&caseDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, id)
		}
		if repository.IsConcurrencyError(err) {
			return nil, returns.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected returns repository receive error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&caseDB, itemsDB), nil
}

// GetReturnedQuantities суммирует уже заявленные к возврату количества
// по всем кейсам отгрузки, включая незавершённые.
func (r *Repository) GetReturnedQuantities(ctx context.Context, originShipmentID string) (map[string]int64, error) {
	query := `SELECT ri.item_code, SUM(ri.quantity)
		FROM return_items ri
		JOIN return_cases rc ON rc.id = ri.return_id
		WHERE rc.origin_shipment_id = $1
		GROUP BY ri.item_code`

	rows, err := r.querier.Query(ctx, query, originShipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected returns repository getreturnedquantities error: %w", err)
	}
	defer rows.Close()

	quantities := make(map[string]int64)
	for rows.Next() {
		var itemCode string
		var quantity int64
		if err := rows.Scan(&itemCode, &quantity); err != nil {
			return nil, fmt.Errorf("unexpected returns repository getreturnedquantities error: %w", err)
		}
		quantities[itemCode] = quantity
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected returns repository getreturnedquantities error: %w", err)
	}

	return quantities, nil
}

func (r *Repository) getItems(ctx context.Context, returnID string) ([]ReturnItemDB, error) {
	query := `SELECT item_code, quantity
		FROM return_items
		WHERE return_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, returnID)
	if err != nil {
		return nil, fmt.Errorf("unexpected returns repository getitems error: %w", err)
	}
	defer rows.Close()

	itemsDB := make([]ReturnItemDB, 0, 4)
	for rows.Next() {
		var itemDB ReturnItemDB
		if err := rows.Scan(&itemDB.ItemCode, &itemDB.Quantity); err != nil {
			return nil, fmt.Errorf("unexpected returns repository getitems error: %w", err)
		}
		itemsDB = append(itemsDB, itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected returns repository getitems error: %w", err)
	}

	return itemsDB, nil
}

func (r *Repository) classifyMissedUpdate(ctx context.Context, id string) error {
	var status string
	err := r.querier.QueryRow(ctx, `SELECT status FROM return_cases WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return returns.ErrReturnNotFound
		}
		if repository.IsConcurrencyError(err) {
			return returns.ErrConcurrentModification
		}
		return fmt.Errorf("unexpected returns repository updatestatus error: %w", err)
	}
	return returns.ErrConcurrentModification
}
