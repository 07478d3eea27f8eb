package caltrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local caltrack database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		return openDB(cfg, func(*sql.DB) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized caltrack database at %s\n", cfg.DBPath)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
