package ports

import (
	"context"
	"time"

	"github.com/staynest/staynest/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// TokenRevoker records revoked token IDs until their natural expiry.
// Backed by Redis in production.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RegisterInput carries a registration request. Role must be admin or tenant.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     domain.Role
}

// AuthService implements registration, login and session teardown.
// Register behaves as an implicit login: it returns a token alongside the
// created user.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}
