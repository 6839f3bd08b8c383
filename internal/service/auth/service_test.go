package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/peopledesk/hrops-backend-go/internal/domain/auth"
	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
	"github.com/peopledesk/hrops-backend-go/internal/domain/user"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/jwt"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAccountRepo struct {
	accounts map[string]user.Account // id -> account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]user.Account{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, account user.Account) (user.Account, error) {
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return user.Account{}, user.ErrEmailExists
		}
	}
	account.ID = uuid.NewString()
	r.accounts[account.ID] = account
	return account, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (user.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return user.Account{}, user.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (user.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return user.Account{}, user.ErrAccountNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	account, ok := r.accounts[id]
	if !ok {
		return user.ErrAccountNotFound
	}
	account.PasswordHash = passwordHash
	r.accounts[id] = account
	return nil
}

type fakeEmployeeRepo struct {
	profiles map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{profiles: map[string]employee.Employee{}}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.profiles[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.profiles[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }
func (r *fakeEmployeeRepo) Delete(_ context.Context, _ string) error            { return nil }

type fakeGoogleService struct {
	email    string
	verified bool
}

func (g *fakeGoogleService) GenerateState(_ string) string { return "state" }
func (g *fakeGoogleService) RedirectURL(_ string) string   { return "https://accounts.example.com" }

func (g *fakeGoogleService) VerifyToken(_ context.Context, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, auth.ErrInvalidToken
	}
	return &oauth2.Token{AccessToken: "google-token"}, nil
}

func (g *fakeGoogleService) VerifyUser(_ context.Context, _ *oauth2.Token) (oauth.GoogleInformation, error) {
	return oauth.GoogleInformation{Email: g.email, VerifiedEmail: g.verified}, nil
}

func newTestService(google oauth.GoogleService) (auth.AuthService, *fakeAccountRepo, *fakeEmployeeRepo) {
	accountRepo := newFakeAccountRepo()
	employeeRepo := newFakeEmployeeRepo()
	jwtService := jwt.NewJWTService("test-secret-key", "15m", "168h")
	svc := NewAuthService(passthroughTx{}, accountRepo, employeeRepo, jwtService, google)
	return svc, accountRepo, employeeRepo
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, email, password string, role user.Role) user.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	account, err := repo.Create(context.Background(), user.Account{
		Name:         "Seeded Account",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	require.NoError(t, err)
	return account
}

func TestLogin(t *testing.T) {
	svc, accountRepo, _ := newTestService(&fakeGoogleService{})
	seedAccount(t, accountRepo, "admin@example.com", "s3cret-pass", user.RoleAdmin)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "admin", resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: "whatever"})
		assert.Error(t, err)
	})
}

func TestRegisterEmployee(t *testing.T) {
	svc, accountRepo, employeeRepo := newTestService(&fakeGoogleService{})
	ctx := context.Background()

	resp, err := svc.RegisterEmployee(ctx, auth.RegisterEmployeeRequest{
		Name:        "Ira Banks",
		Email:       "ira@example.com",
		PhoneNumber: "5550100",
		Password:    "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "employee", resp.Role)

	account, err := accountRepo.FindByEmail(ctx, "ira@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, account.Role)
	assert.NotEqual(t, "longenough", account.PasswordHash)

	profile, err := employeeRepo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", profile.PredefinedCheckInTime, "check-in time defaults when omitted")

	t.Run("custom check-in time", func(t *testing.T) {
		checkIn := "09:30"
		resp, err := svc.RegisterEmployee(ctx, auth.RegisterEmployeeRequest{
			Name:                  "Jo March",
			Email:                 "jo@example.com",
			PhoneNumber:           "5550101",
			Password:              "longenough",
			PredefinedCheckInTime: &checkIn,
		})
		require.NoError(t, err)

		profile, err := employeeRepo.GetByID(ctx, resp.AccountID)
		require.NoError(t, err)
		assert.Equal(t, "09:30", profile.PredefinedCheckInTime)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.RegisterEmployee(ctx, auth.RegisterEmployeeRequest{
			Name:        "Ira Again",
			Email:       "ira@example.com",
			PhoneNumber: "5550102",
			Password:    "longenough",
		})
		assert.ErrorIs(t, err, user.ErrEmailExists)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.RegisterEmployee(ctx, auth.RegisterEmployeeRequest{
			Name:        "Shorty",
			Email:       "short@example.com",
			PhoneNumber: "5550103",
			Password:    "short",
		})
		assert.Error(t, err)
	})
}

func TestRegisterAdmin(t *testing.T) {
	svc, accountRepo, employeeRepo := newTestService(&fakeGoogleService{})

	resp, err := svc.RegisterAdmin(context.Background(), auth.RegisterAdminRequest{
		Name:     "HR Admin",
		Email:    "hr@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)

	account, err := accountRepo.FindByID(context.Background(), resp.AccountID)
	require.NoError(t, err)
	assert.True(t, account.IsAdmin())
	assert.Empty(t, employeeRepo.profiles, "admins carry no employee profile")
}

func TestRefreshAndLogout(t *testing.T) {
	svc, accountRepo, _ := newTestService(&fakeGoogleService{})
	seedAccount(t, accountRepo, "emp@example.com", "s3cret-pass", user.RoleEmployee)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "emp@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.AccountID, refreshed.AccountID)

	t.Run("access token is not a refresh token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, login.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("revoked after logout", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, login.RefreshToken))
		_, err := svc.Refresh(ctx, login.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})
}

func TestLoginWithGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("registered email", func(t *testing.T) {
		google := &fakeGoogleService{email: "emp@example.com", verified: true}
		svc, accountRepo, _ := newTestService(google)
		seedAccount(t, accountRepo, "emp@example.com", "s3cret-pass", user.RoleEmployee)

		resp, err := svc.LoginWithGoogle(ctx, "auth-code")
		require.NoError(t, err)
		assert.Equal(t, "emp@example.com", resp.Email)
	})

	t.Run("unregistered email", func(t *testing.T) {
		google := &fakeGoogleService{email: "stranger@example.com", verified: true}
		svc, _, _ := newTestService(google)

		_, err := svc.LoginWithGoogle(ctx, "auth-code")
		assert.ErrorIs(t, err, auth.ErrEmailNotRegistered)
	})
}
