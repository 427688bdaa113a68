package hr

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	employeeDepartments = []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations", "IT", "Customer Support"}
	employeePositions   = []string{
		"Software Engineer", "Product Manager", "Sales Representative", "HR Specialist",
		"Financial Analyst", "Operations Manager", "IT Support", "Customer Success Manager",
	}
	employeeLocations  = []string{"New York", "San Francisco", "London", "Tokyo", "Berlin", "Singapore", "Toronto", "Sydney"}
	employeeFirstNames = []string{"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa"}
	employeeLastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}
	salaryBands        = []string{"A", "B", "C", "D", "E"}
	employeeStatuses   = []string{"Active", "On Leave", "Probation"}

	policyTypes = []string{"Leave", "Expense", "Code of Conduct", "Remote Work", "Benefits", "Travel", "IT Security", "Performance"}

	paymentMethods  = []string{"Direct Deposit", "Wire Transfer"}
	payrollStatuses = []string{"Paid", "Processing", "Completed"}
)

const (
	employeeCount       = 50
	firstEmployeeNumber = 1000
	policyVersions      = 3
	payrollEmployees    = 30
	periodsPerEmployee  = 8
)

func generateData(rng *rand.Rand) Data {
	employees := generateEmployees(rng)
	return Data{
		Employees: employees,
		Policies:  generatePolicies(rng),
		Payroll:   generatePayroll(rng, employees),
	}
}

func generateEmployees(rng *rand.Rand) []Employee {
	hireEpoch := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	employees := make([]Employee, 0, employeeCount)
	for i := 0; i < employeeCount; i++ {
		first := pick(rng, employeeFirstNames)
		last := pick(rng, employeeLastNames)
		employees = append(employees, Employee{
			EmployeeID: fmt.Sprintf("EMP%d", firstEmployeeNumber+i),
			FirstName:  first,
			LastName:   last,
			FullName:   first + " " + last,
			Email:      fmt.Sprintf("%s.%s@company.com", strings.ToLower(first), strings.ToLower(last)),
			Department: pick(rng, employeeDepartments),
			Position:   pick(rng, employeePositions),
			Location:   pick(rng, employeeLocations),
			HireDate:   hireEpoch.AddDate(0, 0, rng.Intn(1461)).Format("2006-01-02"),
			SalaryBand: pick(rng, salaryBands),
			ManagerID:  fmt.Sprintf("EMP%d", randBetween(rng, 1000, 1040)),
			Status:     pick(rng, employeeStatuses),
			Phone:      fmt.Sprintf("+1-555-%d-%d", randBetween(rng, 100, 999), randBetween(rng, 1000, 9999)),
		})
	}
	return employees
}

// generatePolicies produces three versions of each policy type.
func generatePolicies(rng *rand.Rand) []Policy {
	effectiveEpoch := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	updatedEpoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	policies := make([]Policy, 0, len(policyTypes)*policyVersions)
	for _, policyType := range policyTypes {
		prefix := strings.ToUpper(policyType[:3])
		for v := 1; v <= policyVersions; v++ {
			policies = append(policies, Policy{
				PolicyID:      fmt.Sprintf("POL-%s-%03d", prefix, v),
				PolicyType:    policyType,
				Title:         fmt.Sprintf("%s Policy v%d.0", policyType, v),
				EffectiveDate: effectiveEpoch.AddDate(0, 0, rng.Intn(366)).Format("2006-01-02"),
				Version:       fmt.Sprintf("%d.0", v),
				Category:      policyType,
				Description:   fmt.Sprintf("Official company policy regarding %s procedures and guidelines.", strings.ToLower(policyType)),
				DocumentURL:   fmt.Sprintf("/policies/%s-v%d.0.pdf", strings.ToLower(policyType), v),
				LastUpdated:   updatedEpoch.AddDate(0, 0, rng.Intn(91)).Format("2006-01-02"),
			})
		}
	}
	return policies
}

// generatePayroll produces eight distinct random periods for each of the
// first thirty employees. Net pay is base plus bonus minus deductions;
// overtime is informational and not part of net pay.
func generatePayroll(rng *rand.Rand, employees []Employee) []PayrollEntry {
	periods := make([]string, 0, 24)
	for _, year := range []int{2023, 2024} {
		for month := 1; month <= 12; month++ {
			periods = append(periods, fmt.Sprintf("%d-%02d", year, month))
		}
	}

	n := payrollEmployees
	if n > len(employees) {
		n = len(employees)
	}
	entries := make([]PayrollEntry, 0, n*periodsPerEmployee)
	entryID := 1
	for _, employee := range employees[:n] {
		for _, idx := range rng.Perm(len(periods))[:periodsPerEmployee] {
			period := periods[idx]
			baseSalary := randBetween(rng, 50000, 120000)
			bonus := 0
			if rng.Float64() > 0.7 {
				bonus = rng.Intn(10001)
			}
			overtime := 0
			if rng.Float64() > 0.8 {
				overtime = rng.Intn(2001)
			}
			deductions := randBetween(rng, 500, 2000)
			entries = append(entries, PayrollEntry{
				ID:            entryID,
				EmployeeID:    employee.EmployeeID,
				EmployeeName:  employee.FullName,
				Department:    employee.Department,
				Period:        period,
				BaseSalary:    baseSalary,
				Bonus:         bonus,
				Overtime:      overtime,
				Deductions:    deductions,
				NetPay:        baseSalary + bonus - deductions,
				PaymentDate:   fmt.Sprintf("%s-%d", period, randBetween(rng, 25, 28)),
				PaymentMethod: pick(rng, paymentMethods),
				Status:        pick(rng, payrollStatuses),
			})
			entryID++
		}
	}
	return entries
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// randBetween draws an int in [lo, hi] inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
