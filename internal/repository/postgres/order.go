package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pratik-mahalle/gigmarket/internal/domain/order"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
)

// OrderRepository implements order.Repository using database/sql
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, customer_user_id, business_user_id, offer_detail_id, title, revisions, delivery_time_in_days, price, features, offer_type, status, created_at, updated_at`

// Create persists a new order snapshot
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	features, err := encodeFeatures(o.Features)
	if err != nil {
		return apperrors.Internal("failed to encode features", err)
	}

	now := time.Now()
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (customer_user_id, business_user_id, offer_detail_id, title, revisions,
		                    delivery_time_in_days, price, features, offer_type, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.CustomerUserID, o.BusinessUserID, o.OfferDetailID, o.Title, o.Revisions,
		o.DeliveryTimeInDays, o.Price, features, o.OfferType, o.Status, now.Unix(), now.Unix(),
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create order", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.DatabaseError("failed to get order ID", err)
	}

	o.ID = id
	o.CreatedAt = now
	o.UpdatedAt = now
	return nil
}

func scanOrder(row interface{ Scan(...interface{}) error }) (*order.Order, error) {
	var (
		o                  order.Order
		features           string
		createdAt, updated int64
	)
	err := row.Scan(&o.ID, &o.CustomerUserID, &o.BusinessUserID, &o.OfferDetailID, &o.Title,
		&o.Revisions, &o.DeliveryTimeInDays, &o.Price, &features, &o.OfferType, &o.Status,
		&createdAt, &updated)
	if err != nil {
		return nil, err
	}

	o.Features, err = decodeFeatures(features)
	if err != nil {
		return nil, err
	}
	o.CreatedAt = time.Unix(createdAt, 0)
	o.UpdatedAt = time.Unix(updated, 0)
	return &o, nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("order")
		}
		return nil, apperrors.DatabaseError("failed to get order", err)
	}
	return o, nil
}

// ListForUser retrieves orders where the user participates on either side
func (r *OrderRepository) ListForUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE customer_user_id = ? OR business_user_id = ? ORDER BY created_at DESC, id DESC",
		userID, userID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list orders", err)
	}
	defer rows.Close()

	orders := []*order.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DatabaseError("failed to read orders", err)
	}
	return orders, nil
}

// UpdateStatus persists a status change
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().Unix(), id,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update order status", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to check update result", err)
	}
	if affected == 0 {
		return apperrors.NotFound("order")
	}
	return nil
}

// Delete removes an order
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return apperrors.DatabaseError("failed to delete order", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to check delete result", err)
	}
	if affected == 0 {
		return apperrors.NotFound("order")
	}
	return nil
}

// CountForBusiness counts orders on the business side, optionally
// restricted to one status
func (r *OrderRepository) CountForBusiness(ctx context.Context, businessUserID int64, status string) (int64, error) {
	var (
		count int64
		err   error
	)
	if status == "" {
		err = r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM orders WHERE business_user_id = ?", businessUserID,
		).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM orders WHERE business_user_id = ? AND status = ?",
			businessUserID, status,
		).Scan(&count)
	}
	if err != nil {
		return 0, apperrors.DatabaseError("failed to count orders", err)
	}
	return count, nil
}
