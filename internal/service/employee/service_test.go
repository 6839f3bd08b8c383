package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
)

const testEmployeeID = "7b0a5bb1-60f8-4a3f-9f0e-2a6f13d0c511"

type fakeEmployeeRepo struct {
	profiles map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{profiles: make(map[string]employee.Employee)}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.profiles[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.profiles[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.profiles {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	result := make([]employee.Employee, 0, len(r.profiles))
	for _, emp := range r.profiles {
		result = append(result, emp)
	}
	return result, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := r.profiles[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.profiles[emp.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.profiles[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.profiles, id)
	return nil
}

func seedEmployee(repo *fakeEmployeeRepo) {
	joined := time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC)
	repo.profiles[testEmployeeID] = employee.Employee{
		ID:                    testEmployeeID,
		Name:                  "Mira Kapoor",
		Email:                 "mira@peopledesk.local",
		PhoneNumber:           "9876543210",
		JoinedDate:            &joined,
		PredefinedCheckInTime: "10:00",
	}
}

func TestGetEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	seedEmployee(repo)
	svc := NewEmployeeService(repo)

	resp, err := svc.Get(context.Background(), testEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, "Mira Kapoor", resp.Name)
	assert.Equal(t, "10:00", resp.PredefinedCheckInTime)
	require.NotNil(t, resp.JoinedDate)
	assert.Equal(t, "2024-06-17", *resp.JoinedDate)

	_, err = svc.Get(context.Background(), "2b3a42d9-87d3-4d62-b1a2-4a7de14de2a0")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	seedEmployee(repo)
	svc := NewEmployeeService(repo)

	role := "Backend Engineer"
	checkIn := "09:30"
	resp, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:                    testEmployeeID,
		JobRole:               &role,
		PredefinedCheckInTime: &checkIn,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.JobRole)
	assert.Equal(t, "Backend Engineer", *resp.JobRole)
	assert.Equal(t, "09:30", resp.PredefinedCheckInTime)

	// untouched fields keep their values
	assert.Equal(t, "Mira Kapoor", resp.Name)
	assert.Equal(t, "9876543210", resp.PhoneNumber)
}

func TestUpdateEmployeeValidation(t *testing.T) {
	repo := newFakeEmployeeRepo()
	seedEmployee(repo)
	svc := NewEmployeeService(repo)

	badTime := "25:99"
	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:                    testEmployeeID,
		PredefinedCheckInTime: &badTime,
	})
	assert.Error(t, err)

	_, err = svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: "not-a-uuid"})
	assert.Error(t, err)
}

func TestDeleteEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	seedEmployee(repo)
	svc := NewEmployeeService(repo)

	require.NoError(t, svc.Delete(context.Background(), testEmployeeID))
	assert.ErrorIs(t, svc.Delete(context.Background(), testEmployeeID), employee.ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	repo := newFakeEmployeeRepo()
	seedEmployee(repo)
	svc := NewEmployeeService(repo)

	roster, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, roster, 1)
}
