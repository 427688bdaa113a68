package finance

// Budget is one department/project budget line for a fiscal year.
type Budget struct {
	ID              int    `json:"id"`
	Department      string `json:"department"`
	ProjectID       string `json:"project_id"`
	ProjectName     string `json:"project_name"`
	FiscalYear      int    `json:"fiscal_year"`
	AllocatedBudget int    `json:"allocated_budget"`
	RemainingBudget int    `json:"remaining_budget"`
	SpentToDate     int    `json:"spent_to_date"`
	Status          string `json:"status"`
}

// Field exposes Budget to the query engine.
func (b Budget) Field(name string) (any, bool) {
	switch name {
	case "id":
		return b.ID, true
	case "department":
		return b.Department, true
	case "project_id":
		return b.ProjectID, true
	case "project_name":
		return b.ProjectName, true
	case "fiscal_year":
		return b.FiscalYear, true
	case "allocated_budget":
		return b.AllocatedBudget, true
	case "remaining_budget":
		return b.RemainingBudget, true
	case "spent_to_date":
		return b.SpentToDate, true
	case "status":
		return b.Status, true
	default:
		return nil, false
	}
}

// Expense is one dated expense record.
type Expense struct {
	ID          int     `json:"id"`
	Department  string  `json:"department"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Vendor      string  `json:"vendor"`
	Status      string  `json:"status"`
}

// Field exposes Expense to the query engine.
func (e Expense) Field(name string) (any, bool) {
	switch name {
	case "id":
		return e.ID, true
	case "department":
		return e.Department, true
	case "category":
		return e.Category, true
	case "amount":
		return e.Amount, true
	case "date":
		return e.Date, true
	case "description":
		return e.Description, true
	case "vendor":
		return e.Vendor, true
	case "status":
		return e.Status, true
	default:
		return nil, false
	}
}

// Revenue is one revenue record. ProjectID is nullable; roughly a third of
// generated records have none.
type Revenue struct {
	ID            int     `json:"id"`
	Department    string  `json:"department"`
	Product       string  `json:"product"`
	Period        string  `json:"period"`
	RevenueAmount float64 `json:"revenue_amount"`
	UnitsSold     int     `json:"units_sold"`
	GrowthRate    float64 `json:"growth_rate"`
	ProjectID     *string `json:"project_id"`
}

// Field exposes Revenue to the query engine. A nil ProjectID reads as
// absent, so equality filters treat those records as non-matching.
func (r Revenue) Field(name string) (any, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "department":
		return r.Department, true
	case "product":
		return r.Product, true
	case "period":
		return r.Period, true
	case "revenue_amount":
		return r.RevenueAmount, true
	case "units_sold":
		return r.UnitsSold, true
	case "growth_rate":
		return r.GrowthRate, true
	case "project_id":
		if r.ProjectID == nil {
			return nil, false
		}
		return *r.ProjectID, true
	default:
		return nil, false
	}
}

// Data is the financial.json document: three sub-collections in one file.
type Data struct {
	Budgets  []Budget  `json:"budgets"`
	Expenses []Expense `json:"expenses"`
	Revenues []Revenue `json:"revenues"`
}

// BudgetFilter holds the optional /finance/budgets query parameters.
type BudgetFilter struct {
	Department string
	ProjectID  string
	FiscalYear *int
}

// ExpenseFilter holds the optional /finance/expenses query parameters.
type ExpenseFilter struct {
	Department string
	DateFrom   string
	DateTo     string
}

// RevenueFilter holds the optional /finance/revenues query parameters.
type RevenueFilter struct {
	Department string
	ProjectID  string
	Period     string
}

// BudgetList is the /finance/budgets response envelope.
type BudgetList struct {
	Count   int      `json:"count"`
	Results []Budget `json:"results"`
}

// ExpenseReport is the /finance/expenses response envelope.
type ExpenseReport struct {
	Count               int                `json:"count"`
	TotalAmount         float64            `json:"total_amount"`
	SummaryByCategory   map[string]float64 `json:"summary_by_category"`
	SummaryByDepartment map[string]float64 `json:"summary_by_department"`
	Expenses            []Expense          `json:"expenses"`
}

// RevenueReport is the /finance/revenues response envelope.
type RevenueReport struct {
	Count               int                `json:"count"`
	TotalRevenue        float64            `json:"total_revenue"`
	SummaryByPeriod     map[string]float64 `json:"summary_by_period"`
	SummaryByDepartment map[string]float64 `json:"summary_by_department"`
	Revenues            []Revenue          `json:"revenues"`
}

// Summary is the /finance/summary response.
type Summary struct {
	TotalBudget       float64 `json:"total_budget"`
	TotalExpenses     float64 `json:"total_expenses"`
	TotalRevenue      float64 `json:"total_revenue"`
	NetIncome         float64 `json:"net_income"`
	BudgetUtilization float64 `json:"budget_utilization"`
}
