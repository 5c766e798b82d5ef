package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/timerecord"
)

func newEmployeesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List employees from the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.Err, "Loading employees...")

			employees, err := app.API.ListEmployees(cmd.Context())
			if err != nil {
				slog.Error("Failed to fetch employees", "error", err)
				employees = nil
			}
			return renderEmployees(app, employees)
		},
	}
}

func renderEmployees(app *App, employees []employee.EmployeeResponse) error {
	t := newTable(app.Out, "FIRST NAME", "LAST NAME", "ROLE")
	for _, e := range employees {
		t.row(e.FirstName, e.LastName, e.Role)
	}
	if err := t.flush(); err != nil {
		return err
	}
	if len(employees) == 0 {
		fmt.Fprintln(app.Out, "No employees found.")
	}
	return nil
}

func newRecordsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "List the most recent time records from the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.Err, "Loading time records...")

			records, err := app.API.ListTimeRecords(cmd.Context())
			if err != nil {
				slog.Error("Failed to fetch time records", "error", err)
				records = nil
			}
			return renderTimeRecords(app, records)
		},
	}
}

func renderTimeRecords(app *App, records []timerecord.TimeRecordResponse) error {
	t := newTable(app.Out, "RECORD", "EMPLOYEE", "ROLE", "DATE", "CHECK IN", "CHECK OUT", "LATE")
	for _, r := range records {
		name := orDash(r.FirstName)
		if r.LastName != nil {
			name += " " + *r.LastName
		}
		late := "no"
		if r.IsLate {
			late = "yes"
		}
		t.row(
			strconv.FormatInt(r.RecordID, 10),
			name,
			orDash(r.Role),
			orDash(r.WorkDate),
			orDash(r.CheckInTime),
			orDash(r.CheckOutTime),
			late,
		)
	}
	if err := t.flush(); err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(app.Out, "No time records found.")
	}
	return nil
}
