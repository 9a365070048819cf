package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/programs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	scheduleWeekdays string
	scheduleWeeks    int
	scheduleStart    string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Preview the session dates of a program",
	Long: `Print the calendar a program would get, without generating it.

Week N covers [start + 7(N-1), start + 7N) and each weekday lands on its first
occurrence inside that week.

EXAMPLES:

  fitquestctl schedule --weekdays mon,wed --weeks 3
  fitquestctl schedule --weekdays tue,thu,sat --weeks 2 --start 2025-03-05`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var names []string
		for _, n := range strings.Split(scheduleWeekdays, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		weekdays, err := programs.Params{Weekdays: names}.ParsedWeekdays()
		if err != nil {
			return err
		}
		if len(weekdays) == 0 {
			return fmt.Errorf("at least one weekday is required")
		}
		if scheduleWeeks < 1 || scheduleWeeks > programs.MaxTotalWeeks {
			return fmt.Errorf("weeks must be between 1 and %d", programs.MaxTotalWeeks)
		}

		start := calendar.Today(time.Now(), time.Local)
		if scheduleStart != "" {
			if start, err = calendar.Parse(scheduleStart); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		week := 0
		for _, slot := range programs.CalculateWorkoutDates(start, weekdays, scheduleWeeks) {
			if slot.Week != week {
				week = slot.Week
				bold.Fprintf(out, "week %d\n", week)
			}
			fmt.Fprintf(out, "  %d  %s  %s\n",
				slot.SessionNumber,
				calendar.Format(slot.Date),
				faint.Sprint(slot.Weekday.String()),
			)
		}
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVarP(&scheduleWeekdays, "weekdays", "d", "", "comma separated weekdays, e.g. mon,wed,fri")
	scheduleCmd.Flags().IntVarP(&scheduleWeeks, "weeks", "w", 4, "number of program weeks")
	scheduleCmd.Flags().StringVar(&scheduleStart, "start", "", "first day, YYYY-MM-DD (default today)")
	_ = scheduleCmd.MarkFlagRequired("weekdays")
}
