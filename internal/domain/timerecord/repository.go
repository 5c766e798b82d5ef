package timerecord

import "context"

type TimeRecordRepository interface {
	// ListRecent returns at most limit records joined with their employee, newest id first.
	// A non-positive limit falls back to DefaultLimit.
	ListRecent(ctx context.Context, limit int) ([]TimeRecord, error)
}
