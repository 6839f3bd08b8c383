package employee

import (
	"context"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                    emp.ID,
		Name:                  emp.Name,
		Email:                 emp.Email,
		PhoneNumber:           emp.PhoneNumber,
		JobRole:               emp.JobRole,
		PredefinedCheckInTime: emp.PredefinedCheckInTime,
	}
	if emp.JoinedDate != nil {
		joined := emp.JoinedDate.Format("2006-01-02")
		resp.JoinedDate = &joined
	}
	return resp
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	roster, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(roster))
	for _, emp := range roster {
		result = append(result, toEmployeeResponse(emp))
	}

	return result, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.JobRole != nil {
		emp.JobRole = req.JobRole
	}
	if req.JoinedDate != nil {
		joined, err := time.Parse("2006-01-02", *req.JoinedDate)
		if err == nil {
			emp.JoinedDate = &joined
		}
	}
	if req.BankName != nil {
		emp.BankName = req.BankName
	}
	if req.BankBranch != nil {
		emp.BankBranch = req.BankBranch
	}
	if req.BankAccountNumber != nil {
		emp.BankAccountNumber = req.BankAccountNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.City != nil {
		emp.City = req.City
	}
	if req.State != nil {
		emp.State = req.State
	}
	if req.PinCode != nil {
		emp.PinCode = req.PinCode
	}
	if req.PredefinedCheckInTime != nil {
		emp.PredefinedCheckInTime = *req.PredefinedCheckInTime
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}
