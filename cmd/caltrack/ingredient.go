package caltrack

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage ingredients for composed foods",
}

var (
	ingredientName     string
	ingredientCategory string
	ingredientCalories float64
	ingredientBaseUnit string
	ingredientProtein  float64
	ingredientCarbs    float64
	ingredientFat      float64
	ingredientAll      bool
)

func ingredientInput(cmd *cobra.Command) service.IngredientInput {
	in := service.IngredientInput{
		Name:     ingredientName,
		Category: ingredientCategory,
		Calories: ingredientCalories,
		BaseUnit: ingredientBaseUnit,
	}
	if cmd.Flags().Changed("protein") {
		v := ingredientProtein
		in.Protein = &v
	}
	if cmd.Flags().Changed("carbs") {
		v := ingredientCarbs
		in.Carbs = &v
	}
	if cmd.Flags().Changed("fat") {
		v := ingredientFat
		in.Fat = &v
	}
	return in
}

var ingredientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an ingredient measured per 100g or 100ml",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			ing, err := s.AddIngredient(ctx, ingredientInput(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added ingredient %s (%s)\n", ing.Name, ing.ID)
			return nil
		})
	},
}

var ingredientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingredients",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			items := s.Ingredients()
			if ingredientAll {
				items = s.IngredientChoices()
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY\tKCAL\tPER\tPROTEIN\tCARBS\tFAT")
			for _, ing := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f\t%s\t%s\t%s\t%s\n", ing.ID, ing.Name, ing.Category, ing.Calories, ing.BaseUnit, formatOptional(ing.Protein), formatOptional(ing.Carbs), formatOptional(ing.Fat))
			}
			return nil
		})
	},
}

var ingredientUpdateCmd = &cobra.Command{
	Use:   "update <id-or-name>",
	Short: "Update an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			ing, err := s.UpdateIngredient(ctx, args[0], ingredientInput(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated ingredient %s\n", ing.ID)
			return nil
		})
	},
}

var ingredientDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			if err := s.DeleteIngredient(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted ingredient %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(ingredientCmd)
	ingredientCmd.AddCommand(ingredientAddCmd, ingredientListCmd, ingredientUpdateCmd, ingredientDeleteCmd)
	for _, c := range []*cobra.Command{ingredientAddCmd, ingredientUpdateCmd} {
		c.Flags().StringVar(&ingredientName, "name", "", "Ingredient name")
		c.Flags().StringVar(&ingredientCategory, "category", "", "Category label")
		c.Flags().Float64Var(&ingredientCalories, "calories", 0, "Calories per 100g or 100ml")
		c.Flags().StringVar(&ingredientBaseUnit, "per", "100g", "Base unit: 100g or 100ml")
		c.Flags().Float64Var(&ingredientProtein, "protein", 0, "Protein grams per base unit")
		c.Flags().Float64Var(&ingredientCarbs, "carbs", 0, "Carb grams per base unit")
		c.Flags().Float64Var(&ingredientFat, "fat", 0, "Fat grams per base unit")
		_ = c.MarkFlagRequired("name")
		_ = c.MarkFlagRequired("calories")
	}
	ingredientListCmd.Flags().BoolVar(&ingredientAll, "all", false, "Include built-in foods usable as ingredients")
}
