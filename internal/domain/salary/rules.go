package salary

import "github.com/shopspring/decimal"

// Rules carries every statutory rate and solver setting the calculators
// use. Rates are decimals, flat amounts are minor currency units. A
// different jurisdiction's rules can be injected without touching the
// calculator code.
type Rules struct {
	// Employment contract (umowa o prace)
	EmploymentSocialRate  decimal.Decimal // employee-side ZUS
	EmploymentHealthRate  decimal.Decimal
	EmploymentTaxRate     decimal.Decimal
	EmploymentTaxRelief   int64           // flat monthly tax relief
	EmployerSocialRate    decimal.Decimal // employer-side ZUS
	EmploymentSolveFactor decimal.Decimal // initial gross guess = net * factor
	// Contract of mandate (umowa zlecenie)
	MandateDeductionRate decimal.Decimal
	MandateTaxRate       decimal.Decimal
	MandateSolveFactor   decimal.Decimal
	// Student mandate
	StudentTaxRate decimal.Decimal
	// B2B
	B2BVATRate          decimal.Decimal
	B2BIncomeTaxRate    decimal.Decimal // default flat income tax
	B2BFlatContribution int64           // flat monthly ZUS for contractors
	// Vacation accrual
	WorkingDaysPerYear  int64
	DefaultVacationDays int64
	StandardMonthHours  int64 // for hourly-rate monthly equivalents
	// Iterative net->gross solver
	SolveTolerance     int64 // minor units
	SolveMaxIterations int
}

// DefaultRules returns the Polish rules the company operates under.
func DefaultRules() Rules {
	return Rules{
		EmploymentSocialRate:  decimal.RequireFromString("0.1371"),
		EmploymentHealthRate:  decimal.RequireFromString("0.0777"),
		EmploymentTaxRate:     decimal.RequireFromString("0.0705"),
		EmploymentTaxRelief:   30000,
		EmployerSocialRate:    decimal.RequireFromString("0.1793"),
		EmploymentSolveFactor: decimal.RequireFromString("1.4"),

		MandateDeductionRate: decimal.RequireFromString("0.2919"),
		MandateTaxRate:       decimal.RequireFromString("0.12"),
		MandateSolveFactor:   decimal.RequireFromString("1.5"),

		StudentTaxRate: decimal.RequireFromString("0.12"),

		B2BVATRate:          decimal.RequireFromString("0.23"),
		B2BIncomeTaxRate:    decimal.RequireFromString("0.12"),
		B2BFlatContribution: 180000,

		WorkingDaysPerYear:  252,
		DefaultVacationDays: 21,
		StandardMonthHours:  168,

		SolveTolerance:     100,
		SolveMaxIterations: 100,
	}
}
