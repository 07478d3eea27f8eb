package caltrack

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage caltrack preferences",
}

var (
	cfgSearchLimit int
	cfgTrendWindow int
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set preference values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ctx := cmd.Context()
			updates := 0
			if cmd.Flags().Changed("search-limit") {
				if err := service.SetConfig(ctx, sqldb, service.ConfigSearchLimit, fmt.Sprint(cfgSearchLimit)); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("trend-window") {
				if err := service.SetConfig(ctx, sqldb, service.ConfigTrendWindow, fmt.Sprint(cfgTrendWindow)); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.ListConfig(cmd.Context(), sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)

	configSetCmd.Flags().IntVar(&cfgSearchLimit, "search-limit", 0, "Default number of catalog search results")
	configSetCmd.Flags().IntVar(&cfgTrendWindow, "trend-window", 0, "Default trend window in days (7 or 30)")
}
