package hr

// Employee is one employee directory record.
type Employee struct {
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Location   string `json:"location"`
	HireDate   string `json:"hire_date"`
	SalaryBand string `json:"salary_band"`
	ManagerID  string `json:"manager_id"`
	Status     string `json:"status"`
	Phone      string `json:"phone"`
}

// Field exposes Employee to the query engine.
func (e Employee) Field(name string) (any, bool) {
	switch name {
	case "employee_id":
		return e.EmployeeID, true
	case "first_name":
		return e.FirstName, true
	case "last_name":
		return e.LastName, true
	case "full_name":
		return e.FullName, true
	case "email":
		return e.Email, true
	case "department":
		return e.Department, true
	case "position":
		return e.Position, true
	case "location":
		return e.Location, true
	case "hire_date":
		return e.HireDate, true
	case "salary_band":
		return e.SalaryBand, true
	case "manager_id":
		return e.ManagerID, true
	case "status":
		return e.Status, true
	case "phone":
		return e.Phone, true
	default:
		return nil, false
	}
}

// Policy is one versioned company policy document.
type Policy struct {
	PolicyID      string `json:"policy_id"`
	PolicyType    string `json:"policy_type"`
	Title         string `json:"title"`
	EffectiveDate string `json:"effective_date"`
	Version       string `json:"version"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	DocumentURL   string `json:"document_url"`
	LastUpdated   string `json:"last_updated"`
}

// Field exposes Policy to the query engine.
func (p Policy) Field(name string) (any, bool) {
	switch name {
	case "policy_id":
		return p.PolicyID, true
	case "policy_type":
		return p.PolicyType, true
	case "title":
		return p.Title, true
	case "effective_date":
		return p.EffectiveDate, true
	case "version":
		return p.Version, true
	case "category":
		return p.Category, true
	case "description":
		return p.Description, true
	case "document_url":
		return p.DocumentURL, true
	case "last_updated":
		return p.LastUpdated, true
	default:
		return nil, false
	}
}

// PayrollEntry is one payroll line for an employee and period.
type PayrollEntry struct {
	ID            int    `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Department    string `json:"department"`
	Period        string `json:"period"`
	BaseSalary    int    `json:"base_salary"`
	Bonus         int    `json:"bonus"`
	Overtime      int    `json:"overtime"`
	Deductions    int    `json:"deductions"`
	NetPay        int    `json:"net_pay"`
	PaymentDate   string `json:"payment_date"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

// Field exposes PayrollEntry to the query engine.
func (p PayrollEntry) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "employee_id":
		return p.EmployeeID, true
	case "employee_name":
		return p.EmployeeName, true
	case "department":
		return p.Department, true
	case "period":
		return p.Period, true
	case "base_salary":
		return p.BaseSalary, true
	case "bonus":
		return p.Bonus, true
	case "overtime":
		return p.Overtime, true
	case "deductions":
		return p.Deductions, true
	case "net_pay":
		return p.NetPay, true
	case "payment_date":
		return p.PaymentDate, true
	case "payment_method":
		return p.PaymentMethod, true
	case "status":
		return p.Status, true
	default:
		return nil, false
	}
}

// Data is the hr.json document.
type Data struct {
	Employees []Employee     `json:"employees"`
	Policies  []Policy       `json:"policies"`
	Payroll   []PayrollEntry `json:"payroll"`
}

// EmployeeFilter holds the optional /hr/employees query parameters.
type EmployeeFilter struct {
	EmployeeID string
	Name       string
	Department string
	Status     string
}

// PolicyFilter holds the optional /hr/policies query parameters.
type PolicyFilter struct {
	PolicyType string
	Category   string
}

// PayrollFilter holds the optional /hr/payroll query parameters.
type PayrollFilter struct {
	EmployeeID string
	Period     string
	Department string
}

// EmployeeList is the /hr/employees response envelope.
type EmployeeList struct {
	Count     int        `json:"count"`
	Employees []Employee `json:"employees"`
}

// PolicyList is the /hr/policies response envelope. Policies appear both
// grouped by type and as a flat list.
type PolicyList struct {
	Count          int                 `json:"count"`
	PoliciesByType map[string][]Policy `json:"policies_by_type"`
	AllPolicies    []Policy            `json:"all_policies"`
}

// PayrollReport is the /hr/payroll response envelope.
type PayrollReport struct {
	Count               int                `json:"count"`
	TotalNetPay         float64            `json:"total_net_pay"`
	TotalBaseSalary     float64            `json:"total_base_salary"`
	TotalBonus          float64            `json:"total_bonus"`
	SummaryByDepartment map[string]float64 `json:"summary_by_department"`
	SummaryByPeriod     map[string]float64 `json:"summary_by_period"`
	PayrollEntries      []PayrollEntry     `json:"payroll_entries"`
}

// Summary is the /hr/summary response.
type Summary struct {
	TotalEmployees        int            `json:"total_employees"`
	DepartmentsSummary    map[string]int `json:"departments_summary"`
	EmploymentStatus      map[string]int `json:"employment_status"`
	LocationsSummary      map[string]int `json:"locations_summary"`
	TotalPayrollProcessed float64        `json:"total_payroll_processed"`
	AverageSalary         float64        `json:"average_salary"`
	TotalPayrollRecords   int            `json:"total_payroll_records"`
}
