package dashboard

// CompanyKPIResponse is the company-wide result for one month. Money is
// minor currency units; OperatingMargin is a percentage rounded to two
// decimal places.
type CompanyKPIResponse struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	TotalRevenue    int64   `json:"total_revenue"`
	EmployeeCosts   int64   `json:"employee_costs"`
	FixedCosts      int64   `json:"fixed_costs"`
	OperatingProfit int64   `json:"operating_profit"`
	OperatingMargin float64 `json:"operating_margin"`
}

type EmployeeRankingEntry struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Revenue      int64  `json:"revenue"`
	Cost         int64  `json:"cost"`
	Profit       int64  `json:"profit"`
	IsSnapshot   bool   `json:"is_snapshot"`
}

type ProjectProfitabilityEntry struct {
	ProjectID     string  `json:"project_id"`
	ProjectName   string  `json:"project_name"`
	ClientName    string  `json:"client_name"`
	Revenue       int64   `json:"revenue"`
	Cost          int64   `json:"cost"`
	Profit        int64   `json:"profit"`
	Margin        float64 `json:"margin"`
	EmployeeCount int     `json:"employee_count"`
}

// TrendPoint is one month of the trailing profit trend, oldest first.
// Change fields compare against the previous month using the
// documented percentage-change rules.
type TrendPoint struct {
	Year          int                `json:"year"`
	Month         int                `json:"month"`
	KPI           CompanyKPIResponse `json:"kpi"`
	ProfitChange  *float64           `json:"profit_change,omitempty"`
	RevenueChange *float64           `json:"revenue_change,omitempty"`
}
