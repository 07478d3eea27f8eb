package caltrack

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Inspect the raw user document",
}

var docGetCmd = &cobra.Command{
	Use:     "get [path]",
	Short:   "Print the value at a gjson path (whole document when omitted)",
	Example: "  caltrack doc get 'profiles.#.name'\n  caltrack doc get currentProfileId",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			value, err := s.QueryDocument(path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
	docCmd.AddCommand(docGetCmd)
}
