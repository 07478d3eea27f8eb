package caltrack

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profiles",
}

var (
	profileName     string
	profileGender   string
	profileAge      int
	profileWeight   float64
	profileHeight   int
	profileActivity string
)

func profileInput() service.ProfileInput {
	return service.ProfileInput{
		Name:          profileName,
		Gender:        profileGender,
		Age:           profileAge,
		Weight:        profileWeight,
		Height:        profileHeight,
		ActivityLevel: profileActivity,
	}
}

var profileAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a profile and make it current",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			p, err := s.CreateProfile(ctx, profileInput())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s (%s)\n", p.Name, p.ID)
			return nil
		})
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			current := s.Data().CurrentProfileID
			fmt.Fprintln(cmd.OutOrStdout(), "CURRENT\tID\tNAME\tGENDER\tAGE\tWEIGHT_KG\tHEIGHT_CM\tACTIVITY")
			for _, p := range s.Profiles() {
				marker := ""
				if p.ID == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%.1f\t%d\t%s\n", marker, p.ID, p.Name, p.Gender, p.Age, p.Weight, p.Height, p.ActivityLevel)
			}
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [id-or-name]",
	Short: "Show a profile with its BMR and TDEE (default current)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			var p *model.Profile
			if len(args) == 1 {
				found, err := s.ResolveProfile(args[0])
				if err != nil {
					return err
				}
				p = found
			} else {
				current, ok := s.CurrentProfile()
				if !ok {
					return ledger.Invalidf("no profile selected")
				}
				p = current
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ID: %s\n", p.ID)
			fmt.Fprintf(w, "Name: %s\n", p.Name)
			fmt.Fprintf(w, "Gender: %s\n", p.Gender)
			fmt.Fprintf(w, "Age: %d\n", p.Age)
			fmt.Fprintf(w, "Weight: %.1f kg\n", p.Weight)
			fmt.Fprintf(w, "Height: %d cm\n", p.Height)
			if p.ActivityLevel != "" {
				fmt.Fprintf(w, "Activity: %s\n", p.ActivityLevel)
			}
			fmt.Fprintf(w, "BMR: %d kcal\n", ledger.Round(ledger.BMR(*p)))
			fmt.Fprintf(w, "TDEE: %d kcal\n", ledger.Round(ledger.TDEE(*p)))
			return nil
		})
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update <id-or-name>",
	Short: "Replace a profile's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			existing, err := s.ResolveProfile(args[0])
			if err != nil {
				return err
			}
			in := service.ProfileInput{
				Name:          existing.Name,
				Gender:        string(existing.Gender),
				Age:           existing.Age,
				Weight:        existing.Weight,
				Height:        existing.Height,
				ActivityLevel: string(existing.ActivityLevel),
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = profileName
			}
			if flags.Changed("gender") {
				in.Gender = profileGender
			}
			if flags.Changed("age") {
				in.Age = profileAge
			}
			if flags.Changed("weight") {
				in.Weight = profileWeight
			}
			if flags.Changed("height") {
				in.Height = profileHeight
			}
			if flags.Changed("activity") {
				in.ActivityLevel = profileActivity
			}
			p, err := s.UpdateProfile(ctx, existing.ID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile %s\n", p.ID)
			return nil
		})
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a profile and all of its entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			if err := s.DeleteProfile(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
			return nil
		})
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use [id-or-name]",
	Short: "Select the current profile (no argument clears it)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) == 1 {
			target = args[0]
		}
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			if err := s.SwitchProfile(ctx, target); err != nil {
				return err
			}
			if p, ok := s.CurrentProfile(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Current profile: %s\n", p.Name)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile selected")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileAddCmd, profileListCmd, profileShowCmd, profileUpdateCmd, profileDeleteCmd, profileUseCmd)
	for _, c := range []*cobra.Command{profileAddCmd, profileUpdateCmd} {
		c.Flags().StringVar(&profileName, "name", "", "Profile name")
		c.Flags().StringVar(&profileGender, "gender", "", "male or female")
		c.Flags().IntVar(&profileAge, "age", 0, "Age in years")
		c.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
		c.Flags().IntVar(&profileHeight, "height", 0, "Height in cm")
		c.Flags().StringVar(&profileActivity, "activity", "", "Activity level (Sedentary, Lightly active, Moderately active, Very active, Super active)")
	}
	_ = profileAddCmd.MarkFlagRequired("name")
	_ = profileAddCmd.MarkFlagRequired("gender")
}
