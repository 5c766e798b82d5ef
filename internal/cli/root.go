package cli

import (
	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/logger"
)

func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "attendance",
		Short:         "Employee directory and personal attendance log",
		Version:       logger.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	root.AddCommand(
		newEmployeesCommand(app),
		newRecordsCommand(app),
		newCheckInCommand(app),
		newCheckOutCommand(app),
		newLeaveCommand(app),
		newClearCommand(app),
		newLogCommand(app),
		newStatusCommand(app),
	)
	return root
}
