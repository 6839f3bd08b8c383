package auth

import "context"

// AuthService resolves credentials against the unified account store and
// issues tokens. Token mechanics live in internal/pkg/jwt.
type AuthService interface {
	// Login authenticates any account, admin or employee, with one lookup
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle authenticates a registered account via a verified
	// Google email
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)

	// RegisterEmployee creates an employee account plus profile
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (TokenResponse, error)

	// RegisterAdmin creates an admin account
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (TokenResponse, error)

	// Refresh exchanges a refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
