package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/cron"
)

func newCheckInCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check-in",
		Short: "Record today's check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := app.loadTracker(cmd.Context())
			if err != nil {
				return err
			}

			added, err := tracker.CheckIn(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range added {
				if e.Type == attendance.EntryLate {
					fmt.Fprintf(app.Out, "Late: %s\n", e.Note)
					continue
				}
				fmt.Fprintf(app.Out, "Checked in at %s %s\n", e.Date, e.Time)
			}
			return nil
		},
	}
}

func newCheckOutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check-out",
		Short: "Record today's check-out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := app.loadTracker(cmd.Context())
			if err != nil {
				return err
			}

			entry, err := tracker.CheckOut(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Checked out at %s %s\n", entry.Date, entry.Time)
			return nil
		},
	}
}

func newLeaveCommand(app *App) *cobra.Command {
	var date, leaveType, note string

	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Record a leave request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := app.loadTracker(cmd.Context())
			if err != nil {
				return err
			}

			form := attendance.NewLeaveForm(tracker.Today())
			form.Show()
			if cmd.Flags().Changed("date") {
				form.Date = strings.TrimSpace(date)
			}
			form.Type = attendance.LeaveType(strings.ToUpper(strings.TrimSpace(leaveType)))
			form.Note = note

			entry, err := tracker.SubmitLeave(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Leave recorded for %s %s\n", entry.LeaveDate, entry.DisplayNote())
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "leave date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&leaveType, "type", "", "leave type: SICK, PERSONAL, VACATION or OTHER")
	cmd.Flags().StringVar(&note, "note", "", "free text note")
	return cmd
}

func newClearCommand(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard the whole attendance log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := app.loadTracker(cmd.Context())
			if err != nil {
				return err
			}

			confirm := func() bool {
				return yes || promptYesNo(app.In, app.Err, "Clear all records?")
			}
			err = tracker.ClearAll(cmd.Context(), confirm)
			if errors.Is(err, attendance.ErrClearCancelled) {
				fmt.Fprintln(app.Out, "Nothing cleared.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "All records cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func promptYesNo(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func newLogCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the attendance history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := app.loadTracker(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := tracker.Entries(cmd.Context())
			if err != nil {
				return err
			}
			return renderEntries(app.Out, entries)
		},
	}
}

func renderEntries(w io.Writer, entries []attendance.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No records yet.")
		return nil
	}

	t := newTable(w, "DATE", "TIME", "TYPE", "NOTE")
	for _, e := range entries {
		t.row(e.DisplayDate(), e.Time, e.Type.Label(), e.DisplayNote())
	}
	return t.flush()
}

func newStatusCommand(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's attendance state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := app.loadTracker(cmd.Context())
			if err != nil {
				return err
			}

			printStatus := func(ctx context.Context) error {
				summary, err := tracker.Summary(ctx)
				if err != nil {
					return err
				}
				renderSummary(app.Out, summary)
				return nil
			}

			if !watch {
				return printStatus(cmd.Context())
			}

			scheduler := cron.NewScheduler()
			scheduler.AddJob("attendance-clock", app.tick(), printStatus)
			scheduler.Start(cmd.Context())
			<-cmd.Context().Done()
			scheduler.Stop()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "refresh every second until interrupted")
	return cmd
}

func renderSummary(w io.Writer, s attendance.Summary) {
	fmt.Fprintf(w, "%s %s  %s  %s  (%d entries today)\n", s.Date, s.Time, s.State.Label(), s.LateHint(), s.TodayCount)
}
