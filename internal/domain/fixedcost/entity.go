package fixedcost

import (
	"time"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyOneTime   Frequency = "one_time"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly, FrequencyOneTime:
		return true
	}
	return false
}

// FixedCost is a recurring company expense. Amount is minor currency
// units for one occurrence at the given frequency.
type FixedCost struct {
	ID        string
	CompanyID string
	Name      string
	Amount    int64
	Frequency Frequency
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthlyEquivalent normalizes the cost to a per-month figure for
// aggregation. One-time costs do not recur and contribute zero.
func (f FixedCost) MonthlyEquivalent() int64 {
	switch f.Frequency {
	case FrequencyMonthly:
		return f.Amount
	case FrequencyQuarterly:
		return decimal.NewFromInt(f.Amount).Div(decimal.NewFromInt(3)).Round(0).IntPart()
	case FrequencyYearly:
		return decimal.NewFromInt(f.Amount).Div(decimal.NewFromInt(12)).Round(0).IntPart()
	default:
		return 0
	}
}
