package fixedcost

import "errors"

var (
	ErrFixedCostNotFound = errors.New("fixed cost not found")
)
