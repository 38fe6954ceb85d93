package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pratik-mahalle/gigmarket/internal/domain/profile"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
)

// ProfileRepository implements profile.Repository using database/sql
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, user_id, username, first_name, last_name, file, location, tel, description, working_hours, role, email, created_at`

func scanProfile(row interface{ Scan(...interface{}) error }) (*profile.Profile, error) {
	var (
		p         profile.Profile
		createdAt int64
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Username, &p.FirstName, &p.LastName, &p.File,
		&p.Location, &p.Tel, &p.Description, &p.WorkingHours, &p.Type, &p.Email, &createdAt)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = time.Unix(createdAt, 0)
	return &p, nil
}

// GetByID retrieves a profile by its own ID
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*profile.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("profile")
		}
		return nil, apperrors.DatabaseError("failed to get profile", err)
	}
	return p, nil
}

// GetByUserID retrieves the profile belonging to a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*profile.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE user_id = ?", userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("profile")
		}
		return nil, apperrors.DatabaseError("failed to get profile", err)
	}
	return p, nil
}

// Update persists edited profile fields. When email is non-nil the user
// row's email changes in the same transaction.
func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile, email *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.DatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE profiles
		SET first_name = ?, last_name = ?, file = ?, location = ?, tel = ?,
		    description = ?, working_hours = ?, email = ?
		WHERE id = ?`,
		p.FirstName, p.LastName, p.File, p.Location, p.Tel,
		p.Description, p.WorkingHours, p.Email, p.ID,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update profile", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to check update result", err)
	}
	if affected == 0 {
		return apperrors.NotFound("profile")
	}

	if email != nil {
		_, err := tx.ExecContext(ctx,
			"UPDATE users SET email = ?, updated_at = ? WHERE id = ?",
			*email, time.Now().Unix(), p.UserID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.UniqueViolation("email is already taken", err)
			}
			return apperrors.DatabaseError("failed to update user email", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.DatabaseError("failed to commit transaction", err)
	}
	return nil
}

// EmailInUse reports whether email belongs to any user other than excludeUserID
func (r *ProfileRepository) EmailInUse(ctx context.Context, email string, excludeUserID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = ? AND id != ?)",
		email, excludeUserID,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.DatabaseError("failed to check email", err)
	}
	return exists, nil
}

// ListByRole retrieves all profiles whose user holds the given role
func (r *ProfileRepository) ListByRole(ctx context.Context, role string) ([]*profile.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE role = ? ORDER BY id", role)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list profiles", err)
	}
	defer rows.Close()

	profiles := []*profile.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan profile", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DatabaseError("failed to read profiles", err)
	}
	return profiles, nil
}
