package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

func registerInput(email string, role domain.Role) ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Asha Rao",
		Email:    email,
		Password: "s3cret-pass",
		Phone:    "9876543210",
		Role:     role,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), registerInput("Asha@Example.com", domain.RoleTenant))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token from registration")
	}
	if user.Email != "asha@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleTenant {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), registerInput("bob@example.com", domain.RoleAdmin))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims["sub"] != user.ID {
		t.Fatalf("sub claim = %v, want %s", claims["sub"], user.ID)
	}
	if claims["role"] != "admin" {
		t.Fatalf("role claim = %v, want admin", claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected a jti claim")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !exp.After(time.Now()) {
		t.Fatalf("expected a future exp claim, got %v (%v)", exp, err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour)

	input := registerInput("x@example.com", domain.RoleTenant)
	input.Name = ""
	if _, _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := svc.Register(context.Background(), registerInput("y@example.com", "owner")); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("dup@example.com", domain.RoleTenant)); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput("dup@example.com", domain.RoleTenant)); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour)
	if _, _, err := svc.Register(context.Background(), registerInput("carol@example.com", domain.RoleTenant)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Carol@Example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %q", user.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour)
	if _, _, err := svc.Register(context.Background(), registerInput("dave@example.com", domain.RoleTenant)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour)

	// An unknown account must be indistinguishable from a bad password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubUserRepo(), revoker, "secret", time.Hour)

	exp := time.Now().Add(time.Hour)
	if err := svc.Logout(context.Background(), "jti-1", exp); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if revoked, _ := revoker.IsRevoked(context.Background(), "jti-1"); !revoked {
		t.Fatalf("expected jti-1 to be revoked")
	}

	// Second logout of the same token is a no-op, not an error.
	if err := svc.Logout(context.Background(), "jti-1", exp); err != nil {
		t.Fatalf("repeat Logout returned error: %v", err)
	}
}

func TestAuthService_Logout_ExpiredToken(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubUserRepo(), revoker, "secret", time.Hour)

	if err := svc.Logout(context.Background(), "jti-old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if revoked, _ := revoker.IsRevoked(context.Background(), "jti-old"); revoked {
		t.Fatalf("expired token should not be written to the revocation list")
	}
}
