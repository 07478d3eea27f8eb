package caltrack

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and extend the food catalog",
}

var (
	catalogLimit      int
	catalogJSON       bool
	customName        string
	customCalories    float64
	customUnit        string
	customServingSize float64
)

func printCatalog(w io.Writer, entries []model.CatalogEntry) {
	fmt.Fprintln(w, "ID\tNAME\tKCAL\tUNIT\tSERVING\tCUSTOM")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\t%g\t%t\n", e.ID, e.Name, e.Calories, e.Unit, e.ServingSize, e.IsCustom)
	}
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			if catalogJSON {
				return printJSON(cmd.OutOrStdout(), s.Catalog())
			}
			printCatalog(cmd.OutOrStdout(), s.Catalog())
			return nil
		})
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withSession(cmd, func(ctx context.Context, sqldb *sql.DB, s *service.Session) error {
			limit := catalogLimit
			if limit <= 0 {
				limit = service.ConfigInt(ctx, sqldb, service.ConfigSearchLimit, ledger.DefaultSearchLimit)
			}
			results := s.SearchFoods(query, limit)
			if catalogJSON {
				return printJSON(cmd.OutOrStdout(), results)
			}
			printCatalog(cmd.OutOrStdout(), results)
			return nil
		})
	},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom food",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			food, err := s.AddCustomFood(ctx, service.CustomFoodInput{
				Name:        customName,
				Calories:    customCalories,
				Unit:        customUnit,
				ServingSize: customServingSize,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added custom food %s (%s)\n", food.Name, food.ID)
			return nil
		})
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a custom food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			if err := s.DeleteCustomFood(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted custom food %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogSearchCmd, catalogAddCmd, catalogDeleteCmd)
	catalogListCmd.Flags().BoolVar(&catalogJSON, "json", false, "Output as JSON")
	catalogSearchCmd.Flags().BoolVar(&catalogJSON, "json", false, "Output as JSON")
	catalogSearchCmd.Flags().IntVar(&catalogLimit, "limit", 0, "Maximum results (default from config search_limit)")
	catalogAddCmd.Flags().StringVar(&customName, "name", "", "Food name")
	catalogAddCmd.Flags().Float64Var(&customCalories, "calories", 0, "Calories per unit")
	catalogAddCmd.Flags().StringVar(&customUnit, "unit", "serving", "Unit label")
	catalogAddCmd.Flags().Float64Var(&customServingSize, "serving-size", 1, "Serving size")
	_ = catalogAddCmd.MarkFlagRequired("name")
	_ = catalogAddCmd.MarkFlagRequired("calories")
}
