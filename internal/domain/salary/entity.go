package salary

// ContractType enumerates the Polish employment contract variants the
// calculator knows about. Adding a variant requires extending every
// exhaustive switch in the salary service.
type ContractType string

const (
	// Umowa o prace - regular employment contract
	ContractEmployment ContractType = "employment"
	// B2B - contractor invoicing the company
	ContractB2B ContractType = "b2b"
	// Umowa zlecenie - contract of mandate
	ContractMandate ContractType = "mandate"
	// Umowa zlecenie for registered students under 26
	ContractStudentMandate ContractType = "student_mandate"
)

func (t ContractType) Valid() bool {
	switch t {
	case ContractEmployment, ContractB2B, ContractMandate, ContractStudentMandate:
		return true
	}
	return false
}

// Direction tells the calculator which amount the caller supplied.
type Direction string

const (
	DirectionFromGross Direction = "gross_to_net"
	DirectionFromNet   Direction = "net_to_gross"
)

func (d Direction) Valid() bool {
	return d == DirectionFromGross || d == DirectionFromNet
}

// Breakdown is the full result of a contract cost calculation. Every
// monetary field is in minor currency units (grosze). For B2B contracts
// Gross is the invoice net amount and VAT is informational only.
type Breakdown struct {
	ContractType         ContractType
	Gross                int64
	Net                  int64
	SocialSecurity       int64 // employee-side statutory deduction
	HealthInsurance      int64
	IncomeTax            int64
	VAT                  int64 // B2B only, does not affect cost
	EmployerContribution int64 // employer-side statutory add-on
	EmployerCost         int64 // before vacation accrual
	VacationCostMonthly  int64
	VacationCostAnnual   int64
	TotalMonthlyCost     int64 // EmployerCost + VacationCostMonthly
}
