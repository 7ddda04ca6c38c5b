package dashboard

import (
	"context"

	"github.com/sheepai/hrms-backend-go/internal/domain/dashboard"
	"github.com/sheepai/hrms-backend-go/internal/domain/document"
	"github.com/sheepai/hrms-backend-go/internal/domain/employee"
)

type DashboardServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	docs         document.Store
}

func NewDashboardService(employeeRepo employee.EmployeeRepository, docs document.Store) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo: employeeRepo,
		docs:         docs,
	}
}

func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (dashboard.OverviewResponse, error) {
	employees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return dashboard.OverviewResponse{}, err
	}
	slips, err := s.docs.CountByKind(ctx, document.KindSalarySlip)
	if err != nil {
		return dashboard.OverviewResponse{}, err
	}
	jds, err := s.docs.CountByKind(ctx, document.KindJD)
	if err != nil {
		return dashboard.OverviewResponse{}, err
	}

	return dashboard.OverviewResponse{
		TotalEmployees:   employees,
		TotalSalarySlips: slips,
		TotalJDs:         jds,
	}, nil
}
