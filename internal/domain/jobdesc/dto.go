package jobdesc

import "github.com/sheepai/hrms-backend-go/internal/pkg/validator"

// Content is the structured text a content generator returns for a role.
// Field names double as the JSON contract with the model.
type Content struct {
	JobSummary          string   `json:"job_summary"`
	KeyResponsibilities []string `json:"key_responsibilities"`
	RequiredSkills      []string `json:"required_skills"`
	PreferredSkills     []string `json:"preferred_skills"`
	Qualifications      string   `json:"qualifications"`
	CompensationNote    string   `json:"compensation_note"`
	ComplianceNote      string   `json:"compliance_note"`
}

type GenerateJDRequest struct {
	Role            string `json:"role"`
	Department      string `json:"department,omitempty"`
	Location        string `json:"location,omitempty"`
	Experience      string `json:"experience,omitempty"`
	EmploymentType  string `json:"employment_type,omitempty"`
	ReportsTo       string `json:"reports_to,omitempty"`
	CompanyOverview string `json:"company_overview,omitempty"`
}

func (r *GenerateJDRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JDResponse struct {
	File string `json:"file"`
	Role string `json:"role"`
}
