package employee

import "github.com/sheepai/hrms-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	ID                string `json:"employee_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Designation       string `json:"designation,omitempty"`
	Department        string `json:"department,omitempty"`
	DateOfJoining     string `json:"date_of_joining,omitempty"`
	UAN               string `json:"uan,omitempty"`
	PFNumber          string `json:"pf_number,omitempty"`
	PAN               string `json:"pan,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
}

// Validate enforces the creation contract: ID, name and email are
// required, everything else may be blank.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if r.DateOfJoining != "" {
		if _, ok := validator.IsValidJoiningDate(r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be in DD-MM-YYYY format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateEmployeeRequest) ToEntity() Employee {
	return Employee{
		ID:                r.ID,
		Name:              r.Name,
		Email:             r.Email,
		Designation:       r.Designation,
		Department:        r.Department,
		DateOfJoining:     r.DateOfJoining,
		UAN:               r.UAN,
		PFNumber:          r.PFNumber,
		PAN:               r.PAN,
		BankAccountNumber: r.BankAccountNumber,
	}
}

type EmployeeResponse struct {
	ID                string `json:"employee_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Designation       string `json:"designation,omitempty"`
	Department        string `json:"department,omitempty"`
	DateOfJoining     string `json:"date_of_joining,omitempty"`
	UAN               string `json:"uan,omitempty"`
	PFNumber          string `json:"pf_number,omitempty"`
	PAN               string `json:"pan,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		Email:             e.Email,
		Designation:       e.Designation,
		Department:        e.Department,
		DateOfJoining:     e.DateOfJoining,
		UAN:               e.UAN,
		PFNumber:          e.PFNumber,
		PAN:               e.PAN,
		BankAccountNumber: e.BankAccountNumber,
	}
}

// Option is one entry of a selection dropdown.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
