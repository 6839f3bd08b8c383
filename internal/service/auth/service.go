package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/peopledesk/hrops-backend-go/internal/domain/auth"
	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
	"github.com/peopledesk/hrops-backend-go/internal/domain/user"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/jwt"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

const defaultCheckInTime = "10:00"

type AuthServiceImpl struct {
	tx database.TxManager
	user.AccountRepository
	employee.EmployeeRepository
	jwt    jwt.Service
	google oauth.GoogleService
}

func NewAuthService(
	tx database.TxManager,
	accountRepo user.AccountRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:                 tx,
		AccountRepository:  accountRepo,
		EmployeeRepository: employeeRepo,
		jwt:                jwtService,
		google:             googleService,
	}
}

func (s *AuthServiceImpl) issueTokens(account user.Account) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwt.GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
		Role:             string(account.Role),
		AccountID:        account.ID,
		Name:             account.Name,
		Email:            account.Email,
	}, nil
}

// Login implements auth.AuthService. Admins and employees authenticate
// through the same path; the role rides along in the token claims.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.AccountRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

// LoginWithGoogle implements auth.AuthService. The Google identity must map
// to an existing account; there is no just-in-time registration.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	account, err := s.AccountRepository.FindByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrEmailNotRegistered
		}
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(account)
}

// RegisterEmployee implements auth.AuthService. The account and the profile
// are created in one transaction so a half-registered employee cannot exist.
func (s *AuthServiceImpl) RegisterEmployee(ctx context.Context, req auth.RegisterEmployeeRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	checkInTime := defaultCheckInTime
	if req.PredefinedCheckInTime != nil {
		checkInTime = *req.PredefinedCheckInTime
	}

	var account user.Account
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		account, err = s.AccountRepository.Create(txCtx, user.Account{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		_, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			ID:                    account.ID,
			Name:                  account.Name,
			Email:                 account.Email,
			PhoneNumber:           req.PhoneNumber,
			PredefinedCheckInTime: checkInTime,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(account)
}

// RegisterAdmin implements auth.AuthService.
func (s *AuthServiceImpl) RegisterAdmin(ctx context.Context, req auth.RegisterAdminRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.AccountRepository.Create(ctx, user.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(account)
}

// Refresh implements auth.AuthService. The refresh token itself is reused
// until it expires or is revoked; only the access token rotates.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if s.jwt.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	accountID, err := s.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	account, err := s.AccountRepository.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, user.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	accessToken, expiresAt, err := s.jwt.GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Role:        string(account.Role),
		AccountID:   account.ID,
		Name:        account.Name,
		Email:       account.Email,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(_ context.Context, refreshToken string) error {
	s.jwt.RevokeToken(refreshToken)
	return nil
}
