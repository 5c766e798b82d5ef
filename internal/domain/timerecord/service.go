package timerecord

import "context"

type TimeRecordService interface {
	// ListRecent returns the DefaultLimit most recent records shaped for the API
	ListRecent(ctx context.Context) ([]TimeRecordResponse, error)
}
