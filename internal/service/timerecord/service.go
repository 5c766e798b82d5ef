package timerecord

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/timerecord"
)

type TimeRecordServiceImpl struct {
	timeRecordRepo timerecord.TimeRecordRepository
}

func NewTimeRecordService(timeRecordRepo timerecord.TimeRecordRepository) timerecord.TimeRecordService {
	return &TimeRecordServiceImpl{timeRecordRepo: timeRecordRepo}
}

// ListRecent implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ListRecent(ctx context.Context) ([]timerecord.TimeRecordResponse, error) {
	records, err := s.timeRecordRepo.ListRecent(ctx, timerecord.DefaultLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", timerecord.ErrListTimeRecords, err)
	}

	if len(records) > timerecord.DefaultLimit {
		records = records[:timerecord.DefaultLimit]
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, timerecord.NewTimeRecordResponse(r))
	}
	return responses, nil
}
