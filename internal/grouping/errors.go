package grouping

import "fmt"

// GroupConsistencyError reports a transaction group whose members violate a
// structural rule.
type GroupConsistencyError struct {
	TxHash string
	Reason string
}

func (e *GroupConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent group %s: %s", e.TxHash, e.Reason)
}
