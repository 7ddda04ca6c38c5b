package dashboard

type OverviewResponse struct {
	TotalEmployees   int `json:"total_employees"`
	TotalSalarySlips int `json:"total_salary_slips"`
	TotalJDs         int `json:"total_jds"`
}
