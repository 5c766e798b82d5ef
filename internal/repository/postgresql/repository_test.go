package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DATABASE_URL, applies migrations and returns a context
// bound to a transaction that is rolled back when the test ends.
func setupTestDB(t *testing.T) (*database.DB, context.Context, pgx.Tx) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))

	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	_, err = tx.Exec(ctx, "TRUNCATE TABLE time_records, employees RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return db, postgresql.WithTx(ctx, tx), tx
}

func insertEmployee(t *testing.T, ctx context.Context, tx pgx.Tx, first, last, role string) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO employees (first_name, last_name, role)
		VALUES ($1, $2, $3)
		RETURNING employee_id
	`, first, last, role).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestEmployeeRepository_ListOrderedByID(t *testing.T) {
	db, ctx, tx := setupTestDB(t)

	first := insertEmployee(t, ctx, tx, "Somchai", "Jaidee", "Engineer")
	second := insertEmployee(t, ctx, tx, "Anong", "Suksan", "Manager")

	repo := postgresql.NewEmployeeRepository(db)
	employees, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, employees, 2)
	assert.Equal(t, first, employees[0].ID)
	assert.Equal(t, second, employees[1].ID)
	assert.Equal(t, "Manager", employees[1].Role)
}

func TestEmployeeRepository_ListEmpty(t *testing.T) {
	db, ctx, _ := setupTestDB(t)

	employees, err := postgresql.NewEmployeeRepository(db).List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestTimeRecordRepository_ListRecentLimitAndOrder(t *testing.T) {
	db, ctx, tx := setupTestDB(t)
	empID := insertEmployee(t, ctx, tx, "Somchai", "Jaidee", "Engineer")

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 55; i++ {
		day := start.AddDate(0, 0, i)
		checkIn := day.Add(9 * time.Hour)
		_, err := tx.Exec(ctx, `
			INSERT INTO time_records (employee_id, work_date, check_in_time, is_late)
			VALUES ($1, $2, $3, $4)
		`, empID, day, checkIn, i%2 == 0)
		require.NoError(t, err)
	}

	repo := postgresql.NewTimeRecordRepository(db)
	records, err := repo.ListRecent(ctx, timerecord.DefaultLimit)
	require.NoError(t, err)

	require.Len(t, records, timerecord.DefaultLimit)
	for i := 1; i < len(records); i++ {
		assert.Greater(t, records[i-1].ID, records[i].ID, fmt.Sprintf("row %d", i))
	}
	require.NotNil(t, records[0].FirstName)
	assert.Equal(t, "Somchai", *records[0].FirstName)
	assert.Nil(t, records[0].CheckOutTime)

	few, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, few, timerecord.DefaultLimit)
}

func TestTimeRecords_UniquePerEmployeeAndDay(t *testing.T) {
	_, ctx, tx := setupTestDB(t)
	empID := insertEmployee(t, ctx, tx, "Somchai", "Jaidee", "Engineer")

	_, err := tx.Exec(ctx, `INSERT INTO time_records (employee_id, work_date) VALUES ($1, '2024-01-10')`, empID)
	require.NoError(t, err)

	_, err = tx.Exec(ctx, `SAVEPOINT dup`)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `INSERT INTO time_records (employee_id, work_date) VALUES ($1, '2024-01-10')`, empID)
	assert.Error(t, err)
	_, _ = tx.Exec(ctx, `ROLLBACK TO SAVEPOINT dup`)
}
