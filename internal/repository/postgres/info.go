package postgres

import (
	"context"
	"database/sql"

	"github.com/pratik-mahalle/gigmarket/internal/domain/info"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
)

// InfoRepository implements info.Repository using database/sql
type InfoRepository struct {
	db *sql.DB
}

// NewInfoRepository creates a new InfoRepository
func NewInfoRepository(db *sql.DB) *InfoRepository {
	return &InfoRepository{db: db}
}

// Stats collects the platform counters in one snapshot. COALESCE keeps the
// average at 0 when no reviews exist.
func (r *InfoRepository) Stats(ctx context.Context) (*info.BaseInfo, error) {
	var stats info.BaseInfo
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM reviews),
			(SELECT COALESCE(AVG(rating), 0) FROM reviews),
			(SELECT COUNT(*) FROM profiles WHERE role = ?),
			(SELECT COUNT(*) FROM offers)`,
		user.RoleBusiness,
	).Scan(&stats.ReviewCount, &stats.AverageRating, &stats.BusinessProfileCount, &stats.OfferCount)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to collect platform stats", err)
	}
	return &stats, nil
}
