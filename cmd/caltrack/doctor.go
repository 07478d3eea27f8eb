package caltrack

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			report, err := s.RunDoctor(ctx, doctorFix)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Orphan profile subtrees: %d\n", report.OrphanProfiles)
			fmt.Fprintf(w, "Empty compositions: %d\n", report.EmptyCompositions)
			fmt.Fprintf(w, "Negative totals: %d\n", report.NegativeTotals)
			fmt.Fprintf(w, "Dangling current profile: %t\n", report.DanglingCurrent)
			for _, issue := range report.Issues {
				fmt.Fprintf(w, "  %s: %s\n", issue.Kind, issue.Detail)
			}
			if doctorFix {
				fmt.Fprintf(w, "Fixed: %d\n", report.Fixed)
				// Re-check after fixes so exit status reflects final state.
				report, err = s.RunDoctor(ctx, false)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Remove orphaned entries and clear a dangling profile selection")
}
