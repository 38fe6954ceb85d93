package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
)

// UserService implements user.Service
type UserService struct {
	repo       user.Repository
	logger     *logger.Logger
	bcryptCost int
}

// NewUserService creates a new UserService
func NewUserService(repo user.Repository, log *logger.Logger, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, logger: log, bcryptCost: bcryptCost}
}

// Register creates a new account with its profile mirror
func (s *UserService) Register(ctx context.Context, input user.RegisterInput) (*user.User, error) {
	if !user.ValidRole(input.Role) {
		return nil, apperrors.ValidationError("invalid account type", map[string]interface{}{
			"type": "must be customer or business",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	u := &user.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.With("user_id", u.ID).With("type", u.Role).Info("user registered")
	return u, nil
}

// Authenticate verifies username/password credentials
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	return u, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}
