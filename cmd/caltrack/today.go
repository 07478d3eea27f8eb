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
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's intake, exercise, and energy balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			status, err := s.DaySummary(todayDate)
			if err != nil {
				return err
			}
			if todayJSON {
				return printJSON(cmd.OutOrStdout(), status)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Date: %s\n", status.Date)
			fmt.Fprintf(w, "Consumed: %d kcal\n", status.Consumed)
			fmt.Fprintf(w, "Burned: %d kcal\n", status.Burned)
			fmt.Fprintf(w, "BMR: %d kcal | TDEE: %d kcal\n", status.BMR, status.TDEE)
			fmt.Fprintf(w, "Balance: %s\n", ledger.FormatBalance(status.Net))
			fmt.Fprintf(w, "Meals: Breakfast %d | Lunch %d | Dinner %d | Snack %d\n", status.Meals.Breakfast, status.Meals.Lunch, status.Meals.Dinner, status.Meals.Snack)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output as JSON")
}
