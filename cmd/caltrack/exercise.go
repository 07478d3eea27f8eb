package caltrack

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log and manage exercise entries",
}

var (
	exerciseName     string
	exerciseDuration int
	exerciseCalories int
	exerciseDate     string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an exercise",
	Long:  "Log an exercise. Calories are estimated from the built-in MET table and the current profile's weight unless --calories is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.AddExerciseInput{
			Name:     exerciseName,
			Duration: exerciseDuration,
			Date:     exerciseDate,
		}
		if cmd.Flags().Changed("calories") {
			v := exerciseCalories
			in.Calories = &v
		}
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			e, err := s.AddExercise(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %d min, %d kcal burned (%s) [%s]\n", e.Name, e.Duration, e.CaloriesBurned, e.Date, e.ID)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise entries for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			entries, err := s.ExerciseEntries(exerciseDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tDURATION_MIN\tMET\tKCAL_BURNED")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%g\t%d\n", e.ID, e.Name, e.Duration, e.MET, e.CaloriesBurned)
			}
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ *sql.DB, s *service.Session) error {
			if err := s.DeleteExercise(ctx, exerciseDate, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted exercise entry %s\n", args[0])
			return nil
		})
	},
}

var exerciseTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List built-in exercises and their MET values",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "NAME\tMET")
		for _, ex := range ledger.BuiltinExercises() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", ex.Name, ex.MET)
		}
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseDeleteCmd, exerciseTypesCmd)
	exerciseAddCmd.Flags().StringVar(&exerciseName, "name", "", "Exercise name")
	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes")
	exerciseAddCmd.Flags().IntVar(&exerciseCalories, "calories", 0, "Calories burned (overrides estimate)")
	_ = exerciseAddCmd.MarkFlagRequired("name")
	_ = exerciseAddCmd.MarkFlagRequired("duration")
	for _, c := range []*cobra.Command{exerciseAddCmd, exerciseListCmd, exerciseDeleteCmd} {
		c.Flags().StringVar(&exerciseDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
}
