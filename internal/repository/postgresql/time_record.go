package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
)

type timeRecordRepositoryImpl struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{db: db}
}

// ListRecent implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]timerecord.TimeRecord, error) {
	if limit <= 0 {
		limit = timerecord.DefaultLimit
	}

	q := GetQuerier(ctx, t.db)

	query := `
		SELECT tr.record_id, tr.employee_id, tr.work_date, tr.check_in_time, tr.check_out_time, tr.is_late,
			e.first_name, e.last_name, e.role
		FROM time_records tr
		LEFT JOIN employees e ON e.employee_id = tr.employee_id
		ORDER BY tr.record_id DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query time records: %w", err)
	}
	defer rows.Close()

	records := []timerecord.TimeRecord{}
	for rows.Next() {
		var r timerecord.TimeRecord
		err := rows.Scan(
			&r.ID, &r.EmployeeID, &r.WorkDate, &r.CheckInTime, &r.CheckOutTime, &r.IsLate,
			&r.FirstName, &r.LastName, &r.Role,
		)
		if err != nil {
			return nil, fmt.Errorf("scan time record: %w", err)
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time records: %w", err)
	}

	return records, nil
}
