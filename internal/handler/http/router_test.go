package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hrops-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hrops-backend-go/internal/domain/auth"
	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
	"github.com/peopledesk/hrops-backend-go/internal/domain/holiday"
	"github.com/peopledesk/hrops-backend-go/internal/domain/leave"
	"github.com/peopledesk/hrops-backend-go/internal/domain/report"
	"github.com/peopledesk/hrops-backend-go/internal/domain/salary"
	"github.com/peopledesk/hrops-backend-go/internal/domain/user"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/clock"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "router-test-secret"
	testAdminID    = "0d7c96b5-4f05-4be0-9f1f-4f4f7f1c2a01"
	testEmployeeID = "ae43b6d3-6a5e-49c5-97cf-24a3f0b2c917"
)

// Fakes embed the domain interface so only the methods a test exercises
// need real bodies.

type fakeAuthService struct {
	auth.AuthService
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if req.Password != "password123" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	return auth.TokenResponse{
		AccessToken: "stub-access",
		AccountID:   testEmployeeID,
		Email:       req.Email,
		Role:        string(user.RoleEmployee),
	}, nil
}

type fakeAttendanceService struct {
	attendance.AttendanceService
	checkedIn map[string]bool
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	if f.checkedIn[employeeID] {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}
	f.checkedIn[employeeID] = true
	return attendance.CheckInResponse{
		Attendance:  attendance.AttendanceResponse{EmployeeID: employeeID},
		LateCheckIn: "On time",
	}, nil
}

type fakeSalaryService struct {
	salary.SalaryService
}

func (f *fakeSalaryService) List(ctx context.Context) ([]salary.SalaryResponse, error) {
	return []salary.SalaryResponse{}, nil
}

type fakeEmployeeService struct{ employee.EmployeeService }
type fakeHolidayService struct{ holiday.HolidayService }
type fakeLeaveService struct{ leave.LeaveService }

type fakeReportService struct {
	report.ReportService
	dailyDate *time.Time
}

func (f *fakeReportService) DailySummary(ctx context.Context, date time.Time) ([]report.DailySummaryRow, error) {
	f.dailyDate = &date
	return []report.DailySummaryRow{}, nil
}

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService(testSecret, "15m", "24h")

	handlers := Handlers{
		Auth:       NewAuthHandler(jwtService, &fakeAuthService{}, nil, "http://localhost:3000"),
		Attendance: NewAttendanceHandler(&fakeAttendanceService{checkedIn: make(map[string]bool)}),
		Employee:   NewEmployeeHandler(&fakeEmployeeService{}),
		Holiday:    NewHolidayHandler(&fakeHolidayService{}),
		Leave:      NewLeaveHandler(&fakeLeaveService{}),
		Report:     NewReportHandler(&fakeReportService{}, clock.System()),
		Salary:     NewSalaryHandler(&fakeSalaryService{}),
	}

	return NewRouter(jwtService, handlers, "http://localhost:3000", "test"), jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, accountID string, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(accountID, "someone@peopledesk.local", role)
	require.NoError(t, err)
	return token
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "mira@peopledesk.local",
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var decoded struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.True(t, decoded.Success)
	assert.Equal(t, "stub-access", decoded.Data.AccessToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "mira@peopledesk.local",
		"password": "wrong-password",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckInRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckInWithToken(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := accessToken(t, jwtService, testEmployeeID, user.RoleEmployee)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// duplicate check-in maps to 409
	req = httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminRoutesRejectEmployees(t *testing.T) {
	router, jwtService := newTestRouter(t)

	employeeToken := accessToken(t, jwtService, testEmployeeID, user.RoleEmployee)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/salaries/", nil)
	req.Header.Set("Authorization", "Bearer "+employeeToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := accessToken(t, jwtService, testAdminID, user.RoleAdmin)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/salaries/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	router, jwtService := newTestRouter(t)

	refreshToken, _, err := jwtService.GenerateRefreshToken(testEmployeeID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDailySummaryDefaultsDateFromClock(t *testing.T) {
	fixed := time.Date(2026, time.April, 7, 9, 30, 0, 0, time.UTC)
	svc := &fakeReportService{}
	handler := NewReportHandler(svc, clock.Fixed(fixed))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/daily", nil)
	rec := httptest.NewRecorder()
	handler.DailySummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.dailyDate)
	assert.True(t, svc.dailyDate.Equal(fixed))
}
