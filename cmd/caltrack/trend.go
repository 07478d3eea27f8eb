package caltrack

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var (
	trendEnd  string
	trendDays int
	trendJSON bool
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show net energy over the last 7 or 30 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, sqldb *sql.DB, s *service.Session) error {
			days := trendDays
			if days == 0 {
				days = service.ConfigInt(ctx, sqldb, service.ConfigTrendWindow, service.TrendWeek)
			}
			report, err := s.Trend(trendEnd, days)
			if err != nil {
				return err
			}
			if trendJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "DATE\tCONSUMED\tBURNED\tNET")
			for _, p := range report.Points {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", p.Date, p.Consumed, p.Burned, p.Net)
			}
			if len(report.Points) == 0 {
				fmt.Fprintf(w, "No data in the %d days ending %s\n", report.Days, report.EndDate)
				return nil
			}
			fmt.Fprintf(w, "%d-day total: %s\n", report.Days, ledger.FormatBalance(report.Total))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
	trendCmd.Flags().StringVar(&trendEnd, "end", "", "Last day of the window YYYY-MM-DD (default today)")
	trendCmd.Flags().IntVar(&trendDays, "days", 0, "Window length: 7 or 30 (default from config trend_window)")
	trendCmd.Flags().BoolVar(&trendJSON, "json", false, "Output as JSON")
}
