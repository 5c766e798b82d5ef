package timerecord

import "errors"

var (
	ErrListTimeRecords = errors.New("failed to list time records")
)
