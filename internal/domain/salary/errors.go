package salary

import "errors"

var (
	ErrUnknownContractType = errors.New("unknown contract type")
	ErrUnknownDirection    = errors.New("unknown calculation direction")
	ErrNegativeAmount      = errors.New("amount must be non-negative")
)
