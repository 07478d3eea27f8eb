package caltrack

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/provider/openfoodfacts"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var (
	lookupBarcode  string
	lookupQuery    string
	lookupLimit    int
	lookupSave     bool
	lookupCategory string
	lookupBaseURL  string
)

var ingredientLookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find per-100g nutrition on Open Food Facts",
	Long:  "Look up a packaged food by --barcode or --query on Open Food Facts. With --save the first match is added as an ingredient.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (lookupBarcode == "") == (lookupQuery == "") {
			return fmt.Errorf("set exactly one of --barcode or --query")
		}
		client := &openfoodfacts.Client{BaseURL: lookupBaseURL}
		var products []openfoodfacts.Product
		if lookupBarcode != "" {
			p, err := client.LookupBarcode(cmd.Context(), lookupBarcode)
			if err != nil {
				return err
			}
			products = []openfoodfacts.Product{p}
		} else {
			found, err := client.SearchProducts(cmd.Context(), lookupQuery, lookupLimit)
			if err != nil {
				return err
			}
			products = found
		}

		fmt.Fprintln(cmd.OutOrStdout(), "CODE\tNAME\tBRAND\tKCAL\tPER\tPROTEIN\tCARBS\tFAT")
		for _, p := range products {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f\t%s\t%s\t%s\t%s\n", p.Code, p.Name, p.Brand, p.Calories, p.BaseUnit, formatOptional(p.Protein), formatOptional(p.Carbs), formatOptional(p.Fat))
		}
		if !lookupSave {
			return nil
		}
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			ing, err := s.AddIngredient(ctx, productIngredient(products[0], lookupCategory))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added ingredient %s (%s)\n", ing.Name, ing.ID)
			return nil
		})
	},
}

func productIngredient(p openfoodfacts.Product, category string) service.IngredientInput {
	name := p.Name
	if p.Brand != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(p.Brand)) {
		name = fmt.Sprintf("%s (%s)", name, p.Brand)
	}
	if category == "" {
		category = "Open Food Facts"
	}
	return service.IngredientInput{
		Name:     name,
		Category: category,
		Calories: p.Calories,
		BaseUnit: string(p.BaseUnit),
		Protein:  p.Protein,
		Carbs:    p.Carbs,
		Fat:      p.Fat,
	}
}

func init() {
	ingredientCmd.AddCommand(ingredientLookupCmd)
	ingredientLookupCmd.Flags().StringVar(&lookupBarcode, "barcode", "", "Product barcode")
	ingredientLookupCmd.Flags().StringVar(&lookupQuery, "query", "", "Free-text product search")
	ingredientLookupCmd.Flags().IntVar(&lookupLimit, "limit", 5, "Maximum search results")
	ingredientLookupCmd.Flags().BoolVar(&lookupSave, "save", false, "Add the first match as an ingredient")
	ingredientLookupCmd.Flags().StringVar(&lookupCategory, "category", "", "Category for the saved ingredient")
	ingredientLookupCmd.Flags().StringVar(&lookupBaseURL, "base-url", "", "Override the Open Food Facts API base URL")
	_ = ingredientLookupCmd.Flags().MarkHidden("base-url")
}
