package caltrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var (
	dbPath     string
	configPath string
	storeKind  string
	redisAddr  string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "caltrack",
	Short:         "caltrack tracks calories in and out from your terminal",
	Long:          "caltrack is a calorie tracking CLI with multiple profiles, a food catalog, composed meals from ingredients, exercise logging, and daily or weekly energy balance based on BMR.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError prefixes err by class so rejected input and a failed save read
// differently on the terminal.
func formatError(err error) string {
	switch {
	case ledger.IsValidation(err):
		return "invalid input: " + err.Error()
	case service.IsPersistence(err):
		return fmt.Sprintf("not saved: %v (nothing was written, retry the command)", err)
	default:
		return "error: " + err.Error()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Document store: sqlite or redis")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "Redis address when --store=redis")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
