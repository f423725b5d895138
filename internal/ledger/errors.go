package ledger

import (
	"fmt"
	"strings"
)

// MalformedRecordError reports a raw row that failed field extraction or
// validation. The offending header and row are carried so the caller can
// reproduce and fix the input; the whole batch aborts on this error.
type MalformedRecordError struct {
	RecordKind Kind
	Header     []string
	Row        []string
	Err        error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record: %v (row: %s)",
		e.RecordKind, e.Err, strings.Join(e.Row, ","))
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }
