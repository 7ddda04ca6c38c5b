// Package spreadsheet persists the employee master as a single xlsx
// workbook. The file is the sole source of truth: every operation
// re-reads the full sheet and every create rewrites it.
package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/sheepai/hrms-backend-go/internal/domain/employee"
)

const sheetName = "Employees"

// columns is the fixed header row of the employee master, written when
// the workbook is first created.
var columns = []string{
	"Employee ID",
	"Name",
	"Email",
	"Designation",
	"Department",
	"Date of Joining (DD-MM-YYYY)",
	"UAN",
	"PF Number",
	"PAN",
	"Bank Account Number",
}

type employeeRepositoryImpl struct {
	path string

	// mu serializes the read-check-append sequence so two in-process
	// creates cannot both pass the duplicate check. Writers in other
	// processes remain unsynchronized.
	mu sync.Mutex
}

func NewEmployeeRepository(path string) employee.EmployeeRepository {
	return &employeeRepositoryImpl{path: path}
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	records, err := r.readAll()
	if err != nil {
		return employee.Employee{}, err
	}

	for _, e := range records {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.readAll()
	if err != nil {
		return employee.Employee{}, err
	}

	for _, e := range records {
		if e.ID == newEmployee.ID {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
	}

	records = append(records, newEmployee)
	if err := r.writeAll(records); err != nil {
		return employee.Employee{}, err
	}
	return newEmployee, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return r.readAll()
}

func (r *employeeRepositoryImpl) Count(ctx context.Context) (int, error) {
	records, err := r.readAll()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// readAll loads every record from the workbook. An absent file is an
// empty table, not an error.
func (r *employeeRepositoryImpl) readAll() ([]employee.Employee, error) {
	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open employee file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read employee sheet: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	records := make([]employee.Employee, 0, len(rows)-1)
	for _, row := range rows[1:] {
		e := rowToEmployee(row)
		if e.ID == "" {
			continue
		}
		records = append(records, e)
	}
	return records, nil
}

// writeAll rewrites the whole workbook: header row first, one row per
// record after it.
func (r *employeeRepositoryImpl) writeAll(records []employee.Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name employee sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, e := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []interface{}{
			e.ID, e.Name, e.Email, e.Designation, e.Department,
			e.DateOfJoining, e.UAN, e.PFNumber, e.PAN, e.BankAccountNumber,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	if err := f.SaveAs(r.path); err != nil {
		return fmt.Errorf("failed to save employee file: %w", err)
	}
	return nil
}

func rowToEmployee(row []string) employee.Employee {
	return employee.Employee{
		ID:                cell(row, 0),
		Name:              cell(row, 1),
		Email:             cell(row, 2),
		Designation:       cell(row, 3),
		Department:        cell(row, 4),
		DateOfJoining:     cell(row, 5),
		UAN:               cell(row, 6),
		PFNumber:          cell(row, 7),
		PAN:               cell(row, 8),
		BankAccountNumber: cell(row, 9),
	}
}

// cell returns the i-th value of a row, or "" when the sheet trimmed
// trailing empty cells.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
