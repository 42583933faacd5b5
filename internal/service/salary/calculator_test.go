package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
)

func testCalculator() *Calculator {
	return NewCalculator(salary.DefaultRules())
}

func int64Ptr(v int64) *int64 {
	return &v
}

// 12,000.00 PLN gross on an employment contract, default vacation days.
func TestEmploymentFromGross(t *testing.T) {
	c := testCalculator()

	b := c.EmploymentFromGross(1_200_000, nil)

	assert.Equal(t, int64(1_200_000), b.Gross)
	assert.Equal(t, int64(164_520), b.SocialSecurity)
	assert.Equal(t, int64(80_457), b.HealthInsurance)
	assert.Equal(t, int64(43_001), b.IncomeTax)
	assert.Equal(t, int64(912_022), b.Net)
	assert.Equal(t, int64(215_160), b.EmployerContribution)
	assert.Equal(t, int64(1_415_160), b.EmployerCost)
	assert.Equal(t, int64(117_930), b.VacationCostMonthly)
	assert.Equal(t, int64(1_415_160), b.VacationCostAnnual)
	assert.Equal(t, int64(1_533_090), b.TotalMonthlyCost)
}

// Low gross where the flat relief exceeds the computed tax: income tax
// clamps to zero instead of going negative.
func TestEmploymentFromGross_TaxClampsToZero(t *testing.T) {
	c := testCalculator()

	b := c.EmploymentFromGross(300_000, nil)

	assert.Equal(t, int64(0), b.IncomeTax)
	assert.Equal(t, b.Gross-b.SocialSecurity-b.HealthInsurance, b.Net)
}

func TestEmploymentFromNet_RoundTrip(t *testing.T) {
	c := testCalculator()
	tolerance := c.Rules().SolveTolerance

	for _, targetNet := range []int64{500_000, 912_022, 1_500_000, 2_345_678} {
		b := c.EmploymentFromNet(targetNet, nil)

		assert.InDelta(t, targetNet, b.Net, float64(tolerance),
			"net %d should round-trip within tolerance", targetNet)

		// The returned breakdown must be the forward calculation of its
		// own gross, not an interpolation.
		forward := c.EmploymentFromGross(b.Gross, nil)
		assert.Equal(t, forward, b)
	}
}

// 11,400.00 PLN net invoice, 80.00 PLN/h contractor rate.
func TestB2BFromInvoiceNet(t *testing.T) {
	c := testCalculator()

	b := c.B2BFromInvoiceNet(1_140_000, 8_000, nil)

	assert.Equal(t, int64(1_140_000), b.Gross)
	assert.Equal(t, int64(262_200), b.VAT)
	assert.Equal(t, int64(857_143), b.Net)
	assert.Equal(t, int64(102_857), b.IncomeTax)
	assert.Equal(t, int64(1_140_000), b.EmployerCost)
	assert.Equal(t, int64(112_000), b.VacationCostMonthly)
	assert.Equal(t, int64(1_344_000), b.VacationCostAnnual)
	assert.Equal(t, int64(1_252_000), b.TotalMonthlyCost)
}

// An invoice below the flat contribution leaves nothing to tax.
func TestB2BFromInvoiceNet_BelowFlatContribution(t *testing.T) {
	c := testCalculator()

	b := c.B2BFromInvoiceNet(100_000, 0, nil)

	assert.Equal(t, int64(0), b.Net)
	assert.Equal(t, int64(0), b.IncomeTax)
	assert.Equal(t, int64(0), b.VacationCostMonthly)
}

func TestB2BFromNet_RoundTrip(t *testing.T) {
	c := testCalculator()
	tolerance := c.Rules().SolveTolerance

	for _, targetNet := range []int64{857_143, 1_000_000, 1_234_567} {
		b := c.B2BFromNet(targetNet, 8_000, nil)

		assert.Equal(t, targetNet, b.Net)

		forward := c.B2BFromInvoiceNet(b.Gross, 8_000, nil)
		assert.InDelta(t, targetNet, forward.Net, float64(tolerance))
	}
}

func TestB2BFromNet_InvoiceComposition(t *testing.T) {
	c := testCalculator()

	b := c.B2BFromNet(857_143, 8_000, nil)

	// invoice = net + flat income tax + flat ZUS
	assert.Equal(t, int64(1_140_000), b.Gross)
	assert.Equal(t, b.Gross-c.Rules().B2BFlatContribution-b.Net, b.IncomeTax)
}

// 10,000.00 PLN gross on a contract of mandate.
func TestMandateFromGross(t *testing.T) {
	c := testCalculator()

	b := c.MandateFromGross(1_000_000, nil)

	assert.Equal(t, int64(291_900), b.SocialSecurity)
	assert.Equal(t, int64(84_972), b.IncomeTax)
	assert.Equal(t, int64(623_128), b.Net)
	assert.Equal(t, int64(1_000_000), b.EmployerCost)
	assert.Equal(t, int64(83_333), b.VacationCostMonthly)
	assert.Equal(t, int64(1_083_333), b.TotalMonthlyCost)
}

func TestMandateFromNet_RoundTrip(t *testing.T) {
	c := testCalculator()
	tolerance := c.Rules().SolveTolerance

	for _, targetNet := range []int64{623_128, 400_000, 1_750_000} {
		b := c.MandateFromNet(targetNet, nil)
		assert.InDelta(t, targetNet, b.Net, float64(tolerance))
	}
}

func TestStudentMandateFromGross(t *testing.T) {
	c := testCalculator()

	b := c.StudentMandateFromGross(500_000, nil)

	assert.Equal(t, int64(60_000), b.IncomeTax)
	assert.Equal(t, int64(440_000), b.Net)
	assert.Equal(t, int64(0), b.SocialSecurity)
	assert.Equal(t, int64(0), b.HealthInsurance)
	assert.Equal(t, int64(500_000), b.EmployerCost)
}

// The student inverse is closed form, so the round trip is exact.
func TestStudentMandateFromNet_Exact(t *testing.T) {
	c := testCalculator()

	b := c.StudentMandateFromNet(440_000, nil)

	assert.Equal(t, int64(500_000), b.Gross)
	assert.Equal(t, int64(440_000), b.Net)
}

func TestVacationCost_ScalesWithDays(t *testing.T) {
	c := testCalculator()

	zero := c.EmploymentFromGross(1_200_000, int64Ptr(0))
	def := c.EmploymentFromGross(1_200_000, nil)
	more := c.EmploymentFromGross(1_200_000, int64Ptr(26))

	assert.Equal(t, int64(0), zero.VacationCostMonthly)
	assert.Equal(t, zero.EmployerCost, zero.TotalMonthlyCost)
	assert.Greater(t, more.VacationCostMonthly, def.VacationCostMonthly)
	assert.Equal(t, def.VacationCostMonthly*12, def.VacationCostAnnual)
}

// The same input must always produce the same output; all arithmetic is
// integer-based with explicit rounding.
func TestCalculator_Deterministic(t *testing.T) {
	c := testCalculator()

	first := c.EmploymentFromGross(1_234_567, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.EmploymentFromGross(1_234_567, nil))
	}
}

func TestFromGross_UnknownContractType(t *testing.T) {
	c := testCalculator()

	_, err := c.FromGross("freelance", 1_000_000, nil, nil)
	assert.ErrorIs(t, err, salary.ErrUnknownContractType)

	_, err = c.FromNet("freelance", 1_000_000, nil, nil)
	assert.ErrorIs(t, err, salary.ErrUnknownContractType)
}

func TestFromGross_Dispatch(t *testing.T) {
	c := testCalculator()

	cases := []struct {
		contractType salary.ContractType
		want         salary.Breakdown
	}{
		{salary.ContractEmployment, c.EmploymentFromGross(1_000_000, nil)},
		{salary.ContractB2B, c.B2BFromInvoiceNet(1_000_000, 8_000, nil)},
		{salary.ContractMandate, c.MandateFromGross(1_000_000, nil)},
		{salary.ContractStudentMandate, c.StudentMandateFromGross(1_000_000, nil)},
	}
	for _, tc := range cases {
		got, err := c.FromGross(tc.contractType, 1_000_000, int64Ptr(8_000), nil)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestSolveGrossForNet_Converges(t *testing.T) {
	c := testCalculator()

	b := solveGrossForNet(func(gross int64) salary.Breakdown {
		return c.EmploymentFromGross(gross, nil)
	}, 912_022, 1_276_831, c.Rules().SolveTolerance, c.Rules().SolveMaxIterations)

	assert.InDelta(t, 912_022, b.Net, float64(c.Rules().SolveTolerance))
}

// A forward function that never reaches the target exercises the
// iteration cap; the solver must return its best approximation instead
// of looping forever.
func TestSolveGrossForNet_IterationCap(t *testing.T) {
	constant := func(gross int64) salary.Breakdown {
		return salary.Breakdown{Gross: gross, Net: 0}
	}

	b := solveGrossForNet(constant, 1_000_000, 1_000_000, 100, 5)

	assert.Equal(t, int64(0), b.Net)
}
