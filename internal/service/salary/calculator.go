package salary

import (
	"github.com/shopspring/decimal"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
)

// Calculator holds the statutory rules and implements the four contract
// cost calculators. Every percentage step is rounded to whole minor
// units before it feeds the next step; downstream reports depend on the
// exact cent-level figures, so the step order must not be rearranged.
type Calculator struct {
	rules salary.Rules
}

func NewCalculator(rules salary.Rules) *Calculator {
	return &Calculator{rules: rules}
}

func (c *Calculator) Rules() salary.Rules {
	return c.rules
}

// mulRound multiplies a minor-unit amount by a decimal rate and rounds
// to the nearest whole minor unit.
func mulRound(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}

// vacationCost returns the monthly cost of the employee's vacation
// allowance accrued against the given base amount. A zero base (for
// example a zero hourly rate on a B2B contract) yields zero.
func (c *Calculator) vacationCost(base, vacationDays int64) int64 {
	return decimal.NewFromInt(base).
		Mul(decimal.NewFromInt(vacationDays)).
		Div(decimal.NewFromInt(c.rules.WorkingDaysPerYear)).
		Round(0).IntPart()
}

func (c *Calculator) vacationDaysOrDefault(vacationDays *int64) int64 {
	if vacationDays == nil {
		return c.rules.DefaultVacationDays
	}
	return *vacationDays
}

// EmploymentFromGross computes the employment-contract breakdown from a
// gross monthly salary.
func (c *Calculator) EmploymentFromGross(gross int64, vacationDays *int64) salary.Breakdown {
	social := mulRound(gross, c.rules.EmploymentSocialRate)
	taxable := gross - social
	health := mulRound(taxable, c.rules.EmploymentHealthRate)
	tax := mulRound(taxable, c.rules.EmploymentTaxRate) - c.rules.EmploymentTaxRelief
	if tax < 0 {
		tax = 0
	}
	net := gross - social - health - tax

	employerContribution := mulRound(gross, c.rules.EmployerSocialRate)
	employerCost := gross + employerContribution
	vacMonthly := c.vacationCost(employerCost, c.vacationDaysOrDefault(vacationDays))

	return salary.Breakdown{
		ContractType:         salary.ContractEmployment,
		Gross:                gross,
		Net:                  net,
		SocialSecurity:       social,
		HealthInsurance:      health,
		IncomeTax:            tax,
		EmployerContribution: employerContribution,
		EmployerCost:         employerCost,
		VacationCostMonthly:  vacMonthly,
		VacationCostAnnual:   vacMonthly * 12,
		TotalMonthlyCost:     employerCost + vacMonthly,
	}
}

// EmploymentFromNet solves for the gross salary that yields the target
// net, then returns the forward breakdown for it.
func (c *Calculator) EmploymentFromNet(net int64, vacationDays *int64) salary.Breakdown {
	start := mulRound(net, c.rules.EmploymentSolveFactor)
	return solveGrossForNet(func(gross int64) salary.Breakdown {
		return c.EmploymentFromGross(gross, vacationDays)
	}, net, start, c.rules.SolveTolerance, c.rules.SolveMaxIterations)
}

// B2BFromInvoiceNet computes the contractor breakdown from the net
// invoice amount. The statutory burden sits on the contractor, so the
// employer cost is the invoice amount itself; VAT is informational.
// The vacation accrual is derived from the contractor's hourly rate,
// not from the invoice.
func (c *Calculator) B2BFromInvoiceNet(invoiceNet int64, hourlyRate int64, vacationDays *int64) salary.Breakdown {
	vat := mulRound(invoiceNet, c.rules.B2BVATRate)

	taxable := invoiceNet - c.rules.B2BFlatContribution
	if taxable < 0 {
		taxable = 0
	}
	net := decimal.NewFromInt(taxable).
		Div(decimal.NewFromInt(1).Add(c.rules.B2BIncomeTaxRate)).
		Round(0).IntPart()
	tax := taxable - net

	monthlyEquivalent := hourlyRate * c.rules.StandardMonthHours
	vacMonthly := c.vacationCost(monthlyEquivalent, c.vacationDaysOrDefault(vacationDays))

	return salary.Breakdown{
		ContractType:        salary.ContractB2B,
		Gross:               invoiceNet,
		Net:                 net,
		IncomeTax:           tax,
		VAT:                 vat,
		EmployerCost:        invoiceNet,
		VacationCostMonthly: vacMonthly,
		VacationCostAnnual:  vacMonthly * 12,
		TotalMonthlyCost:    invoiceNet + vacMonthly,
	}
}

// B2BFromNet computes the invoice amount a contractor has to bill to
// take home the target net: net + flat income tax + flat ZUS.
func (c *Calculator) B2BFromNet(net int64, hourlyRate int64, vacationDays *int64) salary.Breakdown {
	invoiceNet := net + mulRound(net, c.rules.B2BIncomeTaxRate) + c.rules.B2BFlatContribution
	b := c.B2BFromInvoiceNet(invoiceNet, hourlyRate, vacationDays)
	// The forward direction re-derives net from the invoice amount;
	// report the caller's target to keep the pair consistent.
	b.Net = net
	b.IncomeTax = invoiceNet - c.rules.B2BFlatContribution - net
	return b
}

// MandateFromGross computes the contract-of-mandate breakdown. There is
// no employer-side add-on; the employer cost is the gross itself.
func (c *Calculator) MandateFromGross(gross int64, vacationDays *int64) salary.Breakdown {
	deduction := mulRound(gross, c.rules.MandateDeductionRate)
	taxable := gross - deduction
	tax := mulRound(taxable, c.rules.MandateTaxRate)
	net := gross - deduction - tax

	vacMonthly := c.vacationCost(gross, c.vacationDaysOrDefault(vacationDays))

	return salary.Breakdown{
		ContractType:        salary.ContractMandate,
		Gross:               gross,
		Net:                 net,
		SocialSecurity:      deduction,
		IncomeTax:           tax,
		EmployerCost:        gross,
		VacationCostMonthly: vacMonthly,
		VacationCostAnnual:  vacMonthly * 12,
		TotalMonthlyCost:    gross + vacMonthly,
	}
}

func (c *Calculator) MandateFromNet(net int64, vacationDays *int64) salary.Breakdown {
	start := mulRound(net, c.rules.MandateSolveFactor)
	return solveGrossForNet(func(gross int64) salary.Breakdown {
		return c.MandateFromGross(gross, vacationDays)
	}, net, start, c.rules.SolveTolerance, c.rules.SolveMaxIterations)
}

// StudentMandateFromGross computes the student-mandate breakdown:
// no statutory deduction at all, only flat income tax.
func (c *Calculator) StudentMandateFromGross(gross int64, vacationDays *int64) salary.Breakdown {
	tax := mulRound(gross, c.rules.StudentTaxRate)
	net := gross - tax

	vacMonthly := c.vacationCost(gross, c.vacationDaysOrDefault(vacationDays))

	return salary.Breakdown{
		ContractType:        salary.ContractStudentMandate,
		Gross:               gross,
		Net:                 net,
		IncomeTax:           tax,
		EmployerCost:        gross,
		VacationCostMonthly: vacMonthly,
		VacationCostAnnual:  vacMonthly * 12,
		TotalMonthlyCost:    gross + vacMonthly,
	}
}

// StudentMandateFromNet is the one closed-form inverse:
// gross = net / (1 - taxRate), rounded.
func (c *Calculator) StudentMandateFromNet(net int64, vacationDays *int64) salary.Breakdown {
	gross := decimal.NewFromInt(net).
		Div(decimal.NewFromInt(1).Sub(c.rules.StudentTaxRate)).
		Round(0).IntPart()
	return c.StudentMandateFromGross(gross, vacationDays)
}

// FromGross dispatches the forward calculation for a contract type.
// For B2B the amount is the net invoice amount.
func (c *Calculator) FromGross(contractType salary.ContractType, amount int64, hourlyRate *int64, vacationDays *int64) (salary.Breakdown, error) {
	switch contractType {
	case salary.ContractEmployment:
		return c.EmploymentFromGross(amount, vacationDays), nil
	case salary.ContractB2B:
		return c.B2BFromInvoiceNet(amount, hourlyRateOrZero(hourlyRate), vacationDays), nil
	case salary.ContractMandate:
		return c.MandateFromGross(amount, vacationDays), nil
	case salary.ContractStudentMandate:
		return c.StudentMandateFromGross(amount, vacationDays), nil
	default:
		return salary.Breakdown{}, salary.ErrUnknownContractType
	}
}

// FromNet dispatches the inverse calculation for a contract type.
func (c *Calculator) FromNet(contractType salary.ContractType, net int64, hourlyRate *int64, vacationDays *int64) (salary.Breakdown, error) {
	switch contractType {
	case salary.ContractEmployment:
		return c.EmploymentFromNet(net, vacationDays), nil
	case salary.ContractB2B:
		return c.B2BFromNet(net, hourlyRateOrZero(hourlyRate), vacationDays), nil
	case salary.ContractMandate:
		return c.MandateFromNet(net, vacationDays), nil
	case salary.ContractStudentMandate:
		return c.StudentMandateFromNet(net, vacationDays), nil
	default:
		return salary.Breakdown{}, salary.ErrUnknownContractType
	}
}

func hourlyRateOrZero(hourlyRate *int64) int64 {
	if hourlyRate == nil {
		return 0
	}
	return *hourlyRate
}
