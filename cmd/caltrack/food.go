package caltrack

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and manage food entries",
}

var (
	foodName        string
	foodMeal        string
	foodDate        string
	foodQuantity    float64
	foodUnit        string
	foodCalories    float64
	foodSaveCustom  bool
	foodIngredients []string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food entry",
	Long:  "Log a food entry. Calories default to the catalog entry with the same name when --calories is omitted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.AddFoodInput{
			Name:         foodName,
			Meal:         foodMeal,
			Date:         foodDate,
			Quantity:     foodQuantity,
			Unit:         foodUnit,
			SaveAsCustom: foodSaveCustom,
		}
		if cmd.Flags().Changed("calories") {
			v := foodCalories
			in.CaloriesPerUnit = &v
		}
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			res, err := s.AddFood(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %d kcal (%s, %s) [%s]\n", res.Entry.Name, res.Entry.TotalCalories, res.Entry.Meal, res.Entry.Date, res.Entry.ID)
			if res.SavedCustom != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to the catalog\n", res.SavedCustom.Name)
			}
			return nil
		})
	},
}

var foodComposeCmd = &cobra.Command{
	Use:     "compose",
	Short:   "Log one serving built from ingredients",
	Example: `  caltrack food compose --name "Overnight oats" --ingredient Oats=50 --ingredient "Greek Yogurt=150"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		portions, err := parsePortions(foodIngredients)
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			entry, err := s.ComposeFood(ctx, service.ComposeFoodInput{
				Name:     foodName,
				Meal:     foodMeal,
				Date:     foodDate,
				Portions: portions,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %d kcal (%s, %s) [%s]\n", entry.Name, entry.TotalCalories, entry.Meal, entry.Date, entry.ID)
			for _, p := range entry.Ingredients {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%g%s\t%.1f kcal\n", p.Name, p.Amount, p.Unit, p.Calories)
			}
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food entries for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			entries, err := s.FoodEntries(foodDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tMEAL\tNAME\tQTY\tUNIT\tKCAL")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%g\t%s\t%d\n", e.ID, e.Meal, e.Name, e.Quantity, e.Unit, e.TotalCalories)
			}
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			if err := s.DeleteFood(ctx, foodDate, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food entry %s\n", args[0])
			return nil
		})
	},
}

// parsePortions reads NAME=AMOUNT pairs.
func parsePortions(raw []string) ([]service.PortionInput, error) {
	out := make([]service.PortionInput, 0, len(raw))
	for _, item := range raw {
		idx := strings.LastIndex(item, "=")
		if idx <= 0 {
			return nil, ledger.Invalidf("invalid --ingredient %q (expected NAME=AMOUNT)", item)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(item[idx+1:]), 64)
		if err != nil {
			return nil, ledger.Invalidf("invalid amount in --ingredient %q", item)
		}
		out = append(out, service.PortionInput{Ingredient: strings.TrimSpace(item[:idx]), Amount: amount})
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodComposeCmd, foodListCmd, foodDeleteCmd)
	for _, c := range []*cobra.Command{foodAddCmd, foodComposeCmd} {
		c.Flags().StringVar(&foodName, "name", "", "Food name")
		c.Flags().StringVar(&foodMeal, "meal", "", "Breakfast, Lunch, Dinner or Snack (default by time of day)")
		_ = c.MarkFlagRequired("name")
	}
	for _, c := range []*cobra.Command{foodAddCmd, foodComposeCmd, foodListCmd, foodDeleteCmd} {
		c.Flags().StringVar(&foodDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
	foodAddCmd.Flags().Float64Var(&foodQuantity, "quantity", 1, "Quantity")
	foodAddCmd.Flags().StringVar(&foodUnit, "unit", "", "Unit label (default from catalog)")
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per unit (default from catalog)")
	foodAddCmd.Flags().BoolVar(&foodSaveCustom, "save", false, "Also save the food to the catalog when it is new")
	foodComposeCmd.Flags().StringArrayVar(&foodIngredients, "ingredient", nil, "Ingredient portion as NAME=AMOUNT in g or ml (repeatable)")
}
