package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pratik-mahalle/gigmarket/internal/domain/offer"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
)

// OfferRepository implements offer.Repository using database/sql
type OfferRepository struct {
	db *sql.DB
}

// NewOfferRepository creates a new OfferRepository
func NewOfferRepository(db *sql.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// CreateWithDetails inserts the offer, its detail rows and the derived
// minimums in one transaction
func (r *OfferRepository) CreateWithDetails(ctx context.Context, o *offer.Offer, details []offer.Detail) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.DatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	now := time.Now()
	minPrice, minDelivery := offer.RecomputeMins(details)

	result, err := tx.ExecContext(ctx, `
		INSERT INTO offers (user_id, title, image, description, min_price, min_delivery_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.UserID, o.Title, o.Image, o.Description, minPrice, minDelivery, now.Unix(), now.Unix(),
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create offer", err)
	}

	offerID, err := result.LastInsertId()
	if err != nil {
		return apperrors.DatabaseError("failed to get offer ID", err)
	}

	for i := range details {
		d := &details[i]
		features, err := encodeFeatures(d.Features)
		if err != nil {
			return apperrors.Internal("failed to encode features", err)
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO offer_details (offer_id, title, revisions, delivery_time_in_days, price, features, offer_type)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			offerID, d.Title, d.Revisions, d.DeliveryTimeInDays, d.Price, features, d.OfferType,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.UniqueViolation("duplicate offer_type in details", err)
			}
			return apperrors.DatabaseError("failed to create offer detail", err)
		}

		detailID, err := res.LastInsertId()
		if err != nil {
			return apperrors.DatabaseError("failed to get detail ID", err)
		}
		d.ID = detailID
		d.OfferID = offerID
	}

	if err := tx.Commit(); err != nil {
		return apperrors.DatabaseError("failed to commit transaction", err)
	}

	o.ID = offerID
	o.CreatedAt = now
	o.UpdatedAt = now
	o.MinPrice = minPrice
	o.MinDeliveryTime = minDelivery
	o.Details = details
	return nil
}

// GetByID retrieves an offer with its details and owner info
func (r *OfferRepository) GetByID(ctx context.Context, id int64) (*offer.Offer, error) {
	var (
		o                  offer.Offer
		createdAt, updated int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.user_id, o.title, o.image, o.description, o.min_price, o.min_delivery_time,
		       o.created_at, o.updated_at, u.first_name, u.last_name, u.username
		FROM offers o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = ?`, id,
	).Scan(&o.ID, &o.UserID, &o.Title, &o.Image, &o.Description, &o.MinPrice, &o.MinDeliveryTime,
		&createdAt, &updated, &o.UserDetails.FirstName, &o.UserDetails.LastName, &o.UserDetails.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("offer")
		}
		return nil, apperrors.DatabaseError("failed to get offer", err)
	}
	o.CreatedAt = time.Unix(createdAt, 0)
	o.UpdatedAt = time.Unix(updated, 0)

	details, err := r.loadDetails(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Details = details[o.ID]
	return &o, nil
}

// UpdateWithDetails persists edited offer scalars, the merged detail rows
// and the recomputed minimums in one transaction
func (r *OfferRepository) UpdateWithDetails(ctx context.Context, o *offer.Offer, details []offer.Detail) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.DatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	now := time.Now()
	minPrice, minDelivery := offer.RecomputeMins(details)

	result, err := tx.ExecContext(ctx, `
		UPDATE offers
		SET title = ?, image = ?, description = ?, min_price = ?, min_delivery_time = ?, updated_at = ?
		WHERE id = ?`,
		o.Title, o.Image, o.Description, minPrice, minDelivery, now.Unix(), o.ID,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update offer", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to check update result", err)
	}
	if affected == 0 {
		return apperrors.NotFound("offer")
	}

	for i := range details {
		d := &details[i]
		features, err := encodeFeatures(d.Features)
		if err != nil {
			return apperrors.Internal("failed to encode features", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE offer_details
			SET title = ?, revisions = ?, delivery_time_in_days = ?, price = ?, features = ?
			WHERE offer_id = ? AND offer_type = ?`,
			d.Title, d.Revisions, d.DeliveryTimeInDays, d.Price, features, o.ID, d.OfferType,
		)
		if err != nil {
			return apperrors.DatabaseError("failed to update offer detail", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.DatabaseError("failed to commit transaction", err)
	}

	o.UpdatedAt = now
	o.MinPrice = minPrice
	o.MinDeliveryTime = minDelivery
	o.Details = details
	return nil
}

// Delete removes an offer; detail rows cascade
func (r *OfferRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM offers WHERE id = ?", id)
	if err != nil {
		return apperrors.DatabaseError("failed to delete offer", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to check delete result", err)
	}
	if affected == 0 {
		return apperrors.NotFound("offer")
	}
	return nil
}

// List retrieves offers matching the filter with details loaded
func (r *OfferRepository) List(ctx context.Context, filter offer.Filter, limit, offset int) ([]*offer.Offer, int64, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.CreatorID != nil {
		conditions = append(conditions, "o.user_id = ?")
		args = append(args, *filter.CreatorID)
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "o.min_price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxDeliveryTime != nil {
		// Match against the live detail rows, not the precomputed
		// aggregate, so any tier within the bound qualifies.
		conditions = append(conditions,
			"EXISTS(SELECT 1 FROM offer_details d WHERE d.offer_id = o.id AND d.delivery_time_in_days <= ?)")
		args = append(args, *filter.MaxDeliveryTime)
	}
	if filter.Search != "" {
		conditions = append(conditions, "(o.title LIKE ? OR o.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT o.id) FROM offers o"+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("failed to count offers", err)
	}

	orderBy := orderClause(filter.Ordering)
	query := fmt.Sprintf(`
		SELECT DISTINCT o.id, o.user_id, o.title, o.image, o.description, o.min_price, o.min_delivery_time,
		       o.created_at, o.updated_at, u.first_name, u.last_name, u.username
		FROM offers o
		JOIN users u ON u.id = o.user_id
		%s
		ORDER BY %s
		LIMIT ? OFFSET ?`, where, orderBy)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("failed to list offers", err)
	}
	defer rows.Close()

	offers := []*offer.Offer{}
	var ids []int64
	for rows.Next() {
		var (
			o                  offer.Offer
			createdAt, updated int64
		)
		err := rows.Scan(&o.ID, &o.UserID, &o.Title, &o.Image, &o.Description, &o.MinPrice, &o.MinDeliveryTime,
			&createdAt, &updated, &o.UserDetails.FirstName, &o.UserDetails.LastName, &o.UserDetails.Username)
		if err != nil {
			return nil, 0, apperrors.DatabaseError("failed to scan offer", err)
		}
		o.CreatedAt = time.Unix(createdAt, 0)
		o.UpdatedAt = time.Unix(updated, 0)
		offers = append(offers, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.DatabaseError("failed to read offers", err)
	}

	if len(ids) > 0 {
		details, err := r.loadDetails(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, o := range offers {
			o.Details = details[o.ID]
		}
	}

	return offers, total, nil
}

// orderClause maps the API ordering parameter onto a SQL ORDER BY.
// A leading "-" means descending. Unknown fields fall back to updated_at.
func orderClause(ordering string) string {
	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}
	switch field {
	case "min_price":
		return "o.min_price " + direction + ", o.id " + direction
	case "updated_at":
		return "o.updated_at " + direction + ", o.id " + direction
	default:
		return "o.updated_at DESC, o.id DESC"
	}
}

// GetDetail retrieves a single detail with the owning offer's user joined in
func (r *OfferRepository) GetDetail(ctx context.Context, id int64) (*offer.Detail, error) {
	var (
		d        offer.Detail
		features string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT d.id, d.offer_id, d.title, d.revisions, d.delivery_time_in_days, d.price, d.features, d.offer_type, o.user_id
		FROM offer_details d
		JOIN offers o ON o.id = d.offer_id
		WHERE d.id = ?`, id,
	).Scan(&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &features, &d.OfferType, &d.OwnerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("offer detail")
		}
		return nil, apperrors.DatabaseError("failed to get offer detail", err)
	}

	d.Features, err = decodeFeatures(features)
	if err != nil {
		return nil, apperrors.Internal("failed to decode features", err)
	}
	return &d, nil
}

// loadDetails fetches the detail rows for a set of offers, keyed by offer ID
func (r *OfferRepository) loadDetails(ctx context.Context, offerIDs []int64) (map[int64][]offer.Detail, error) {
	placeholders := make([]string, len(offerIDs))
	args := make([]interface{}, len(offerIDs))
	for i, id := range offerIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, offer_id, title, revisions, delivery_time_in_days, price, features, offer_type
		FROM offer_details
		WHERE offer_id IN (%s)
		ORDER BY offer_id, id`, strings.Join(placeholders, ", ")), args...)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to load offer details", err)
	}
	defer rows.Close()

	details := make(map[int64][]offer.Detail)
	for rows.Next() {
		var (
			d        offer.Detail
			features string
		)
		err := rows.Scan(&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &features, &d.OfferType)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan offer detail", err)
		}
		d.Features, err = decodeFeatures(features)
		if err != nil {
			return nil, apperrors.Internal("failed to decode features", err)
		}
		details[d.OfferID] = append(details[d.OfferID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DatabaseError("failed to read offer details", err)
	}
	return details, nil
}
