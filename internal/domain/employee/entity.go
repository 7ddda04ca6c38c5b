package employee

// Employee is one row of the employee master workbook. All fields are
// stored as strings, exactly as they appear in the sheet; DateOfJoining
// keeps the DD-MM-YYYY convention the sheet header declares.
type Employee struct {
	ID                string
	Name              string
	Email             string
	Designation       string
	Department        string
	DateOfJoining     string
	UAN               string
	PFNumber          string
	PAN               string
	BankAccountNumber string
}
