package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
)

// UserRepository implements user.Repository using database/sql
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user row and its profile mirror in one transaction
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.DatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, is_staff, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.IsStaff, now.Unix(), now.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.UniqueViolation("username or email is already taken", err)
		}
		return apperrors.DatabaseError("failed to create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.DatabaseError("failed to get user ID", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO profiles (user_id, username, first_name, last_name, role, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, u.Username, u.FirstName, u.LastName, u.Role, u.Email, now.Unix(),
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create profile", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.DatabaseError("failed to commit transaction", err)
	}

	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getBy(ctx, "username = ?", username)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg interface{}) (*user.User, error) {
	var (
		u                  user.User
		createdAt, updated int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, first_name, last_name, role, is_staff, created_at, updated_at
		FROM users WHERE `+where,
		arg,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.IsStaff, &createdAt, &updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.DatabaseError("failed to get user", err)
	}

	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updated, 0)
	return &u, nil
}

// Exists reports whether a user with the given ID exists
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", id,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.DatabaseError("failed to check user existence", err)
	}
	return exists, nil
}

// UpdateEmail changes a user's email address
func (r *UserRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET email = ?, updated_at = ? WHERE id = ?",
		email, time.Now().Unix(), id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.UniqueViolation("email is already taken", err)
		}
		return apperrors.DatabaseError("failed to update email", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to check update result", err)
	}
	if affected == 0 {
		return apperrors.NotFound("user")
	}
	return nil
}
