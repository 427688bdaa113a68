package finance

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

var (
	budgetDepartments  = []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations"}
	budgetProjects     = []string{"Project Alpha", "Project Beta", "Project Gamma", "Project Delta"}
	budgetFiscalYears  = []int{2023, 2024, 2025}
	budgetStatuses     = []string{"On Track", "Over Budget", "Under Budget"}
	expenseCategories  = []string{"Salaries", "Equipment", "Travel", "Software", "Office Supplies", "Marketing"}
	expenseStatuses    = []string{"Approved", "Pending", "Rejected"}
	revenueDepartments = []string{"Sales", "Marketing", "Partnerships", "Services"}
	revenueProducts    = []string{"Product A", "Product B", "Product C", "Service X", "Service Y"}
	revenuePeriods     = []string{"Q1 2024", "Q2 2024", "Q3 2024", "Q4 2024", "Q1 2025", "Q2 2025"}
)

const (
	expenseCount      = 1000
	expenseWindowDays = 730
)

var expenseStartDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func generateData(rng *rand.Rand) Data {
	return Data{
		Budgets:  generateBudgets(rng),
		Expenses: generateExpenses(rng),
		Revenues: generateRevenues(rng),
	}
}

// generateBudgets produces one line per fiscal year, department and project.
func generateBudgets(rng *rand.Rand) []Budget {
	budgets := make([]Budget, 0, len(budgetFiscalYears)*len(budgetDepartments)*len(budgetProjects))
	id := 1
	for _, year := range budgetFiscalYears {
		for _, dept := range budgetDepartments {
			for _, project := range budgetProjects {
				budgets = append(budgets, Budget{
					ID:              id,
					Department:      dept,
					ProjectID:       fmt.Sprintf("PROJ-%03d", id%1000),
					ProjectName:     project,
					FiscalYear:      year,
					AllocatedBudget: randBetween(rng, 50000, 500000),
					RemainingBudget: randBetween(rng, 10000, 100000),
					SpentToDate:     randBetween(rng, 10000, 400000),
					Status:          pick(rng, budgetStatuses),
				})
				id++
			}
		}
	}
	return budgets
}

func generateExpenses(rng *rand.Rand) []Expense {
	expenses := make([]Expense, 0, expenseCount)
	for i := 0; i < expenseCount; i++ {
		dept := pick(rng, budgetDepartments)
		date := expenseStartDate.AddDate(0, 0, rng.Intn(expenseWindowDays+1))
		expenses = append(expenses, Expense{
			ID:          i + 1,
			Department:  dept,
			Category:    pick(rng, expenseCategories),
			Amount:      round2(100 + rng.Float64()*9900),
			Date:        date.Format("2006-01-02"),
			Description: fmt.Sprintf("%s %s expense", dept, pick(rng, expenseCategories)),
			Vendor:      fmt.Sprintf("Vendor %d", randBetween(rng, 1, 50)),
			Status:      pick(rng, expenseStatuses),
		})
	}
	return expenses
}

// generateRevenues produces one record per period, department and product.
// Around 30% of records carry no project reference.
func generateRevenues(rng *rand.Rand) []Revenue {
	revenues := make([]Revenue, 0, len(revenuePeriods)*len(revenueDepartments)*len(revenueProducts))
	id := 1
	for _, period := range revenuePeriods {
		for _, dept := range revenueDepartments {
			for _, product := range revenueProducts {
				var projectID *string
				if rng.Float64() > 0.3 {
					pid := fmt.Sprintf("REV-%03d", id%1000)
					projectID = &pid
				}
				revenues = append(revenues, Revenue{
					ID:            id,
					Department:    dept,
					Product:       product,
					Period:        period,
					RevenueAmount: round2(5000 + rng.Float64()*95000),
					UnitsSold:     randBetween(rng, 10, 500),
					GrowthRate:    round1(-10 + rng.Float64()*40),
					ProjectID:     projectID,
				})
				id++
			}
		}
	}
	return revenues
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// randBetween draws an int in [lo, hi] inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
