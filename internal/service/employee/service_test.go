package employee

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sheepai/hrms-backend-go/internal/domain/employee"
	"github.com/sheepai/hrms-backend-go/internal/repository/spreadsheet"
)

func newTestService(t *testing.T) domain.EmployeeService {
	repo := spreadsheet.NewEmployeeRepository(filepath.Join(t.TempDir(), "employee_master.xlsx"))
	return NewEmployeeService(repo)
}

func TestEmployeeService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateEmployee(ctx, domain.CreateEmployeeRequest{
		ID:            "EMP001",
		Name:          "Asha Verma",
		Email:         "asha@example.com",
		Designation:   "Analyst",
		DateOfJoining: "15-08-2022",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP001", created.ID)

	got, err := svc.GetEmployee(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", got.Name)
	assert.Equal(t, "15-08-2022", got.DateOfJoining)
}

func TestEmployeeService_CreateEmployee_DuplicateID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	req := domain.CreateEmployeeRequest{ID: "EMP001", Name: "Asha Verma", Email: "asha@example.com"}
	_, err := svc.CreateEmployee(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmployeeIDExists)
}

func TestEmployeeService_CreateEmployee_ValidationError(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateEmployee(ctx, domain.CreateEmployeeRequest{
		ID:    "EMP001",
		Name:  "Asha Verma",
		Email: "not-an-email",
	})
	assert.Error(t, err)
}

func TestEmployeeService_GetEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.GetEmployee(ctx, "GHOST")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_ListOptions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateEmployee(ctx, domain.CreateEmployeeRequest{ID: "EMP001", Name: "Asha Verma", Email: "asha@example.com"})
	require.NoError(t, err)
	_, err = svc.CreateEmployee(ctx, domain.CreateEmployeeRequest{ID: "EMP002", Name: "Rohan Mehta", Email: "rohan@example.com"})
	require.NoError(t, err)

	options, err := svc.ListOptions(ctx)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "EMP001", options[0].Value)
	assert.Equal(t, "EMP001 - Asha Verma", options[0].Label)
	assert.Equal(t, "EMP002 - Rohan Mehta", options[1].Label)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
