package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sheepai/hrms-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", created.ID)
	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

func (s *EmployeeServiceImpl) ListOptions(ctx context.Context) ([]employee.Option, error) {
	records, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]employee.Option, 0, len(records))
	for _, e := range records {
		options = append(options, employee.Option{
			Value: e.ID,
			Label: fmt.Sprintf("%s - %s", e.ID, e.Name),
		})
	}
	return options, nil
}

func (s *EmployeeServiceImpl) Count(ctx context.Context) (int, error) {
	return s.employeeRepo.Count(ctx)
}
