package customer

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/planning"
	"github.com/jackc/pgx/v5"
)

// Repository читает клиентский мастер, писать в него сервису нельзя.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	query := `SELECT id, name, phone, email, shipping_address, billing_address, updated_at
		FROM customers
		WHERE id = $1`

	var customerDB CustomerDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&customerDB.ID,
		&customerDB.Name,
		&customerDB.Phone,
		&customerDB.Email,
		&customerDB.ShippingAddress,
		&customerDB.BillingAddress,
		&customerDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, planning.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(&customerDB), nil
}
