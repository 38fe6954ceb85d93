package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pratik-mahalle/gigmarket/internal/domain/review"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
)

// ReviewRepository implements review.Repository using database/sql
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `id, business_user_id, reviewer_id, rating, description, created_at, updated_at`

func scanReview(row interface{ Scan(...interface{}) error }) (*review.Review, error) {
	var (
		rv                 review.Review
		createdAt, updated int64
	)
	err := row.Scan(&rv.ID, &rv.BusinessUserID, &rv.ReviewerID, &rv.Rating, &rv.Description,
		&createdAt, &updated)
	if err != nil {
		return nil, err
	}
	rv.CreatedAt = time.Unix(createdAt, 0)
	rv.UpdatedAt = time.Unix(updated, 0)
	return &rv, nil
}

// Create persists a new review. The unique pair constraint backstops the
// service-level duplicate check under concurrent submissions.
func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	now := time.Now()
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (business_user_id, reviewer_id, rating, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rv.BusinessUserID, rv.ReviewerID, rv.Rating, rv.Description, now.Unix(), now.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.UniqueViolation("you have already reviewed this business user", err)
		}
		return apperrors.DatabaseError("failed to create review", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.DatabaseError("failed to get review ID", err)
	}

	rv.ID = id
	rv.CreatedAt = now
	rv.UpdatedAt = now
	return nil
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*review.Review, error) {
	rv, err := scanReview(r.db.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("review")
		}
		return nil, apperrors.DatabaseError("failed to get review", err)
	}
	return rv, nil
}

// Update persists rating/description edits
func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	now := time.Now()
	result, err := r.db.ExecContext(ctx,
		"UPDATE reviews SET rating = ?, description = ?, updated_at = ? WHERE id = ?",
		rv.Rating, rv.Description, now.Unix(), rv.ID,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update review", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to check update result", err)
	}
	if affected == 0 {
		return apperrors.NotFound("review")
	}

	rv.UpdatedAt = now
	return nil
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = ?", id)
	if err != nil {
		return apperrors.DatabaseError("failed to delete review", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to check delete result", err)
	}
	if affected == 0 {
		return apperrors.NotFound("review")
	}
	return nil
}

// List retrieves reviews matching the filter
func (r *ReviewRepository) List(ctx context.Context, filter review.Filter) ([]*review.Review, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.BusinessUserID != nil {
		conditions = append(conditions, "business_user_id = ?")
		args = append(args, *filter.BusinessUserID)
	}
	if filter.ReviewerID != nil {
		conditions = append(conditions, "reviewer_id = ?")
		args = append(args, *filter.ReviewerID)
	}

	query := "SELECT " + reviewColumns + " FROM reviews"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + reviewOrderClause(filter.Ordering)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list reviews", err)
	}
	defer rows.Close()

	reviews := []*review.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan review", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DatabaseError("failed to read reviews", err)
	}
	return reviews, nil
}

func reviewOrderClause(ordering string) string {
	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}
	switch field {
	case "rating":
		return "rating " + direction + ", id " + direction
	case "updated_at":
		return "updated_at " + direction + ", id " + direction
	default:
		return "updated_at DESC, id DESC"
	}
}

// ExistsForPair reports whether the reviewer already reviewed the business user
func (r *ReviewRepository) ExistsForPair(ctx context.Context, reviewerID, businessUserID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM reviews WHERE reviewer_id = ? AND business_user_id = ?)",
		reviewerID, businessUserID,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.DatabaseError("failed to check review existence", err)
	}
	return exists, nil
}
