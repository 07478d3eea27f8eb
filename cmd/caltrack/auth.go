package caltrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign up, sign in, and sign out",
}

var (
	authEmail    string
	authPassword string
)

var authSignUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			account, err := auth.NewProvider(sqldb).SignUp(cmd.Context(), authEmail, authPassword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed up and signed in as %s\n", account.Email)
			return nil
		})
	},
}

var authSignInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			account, err := auth.NewProvider(sqldb).SignIn(cmd.Context(), authEmail, authPassword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", account.Email)
			return nil
		})
	},
}

var authSignOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := auth.NewProvider(sqldb).SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		})
	},
}

var authWhoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			account, err := auth.NewProvider(sqldb).Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", account.Email, account.ID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSignUpCmd, authSignInCmd, authSignOutCmd, authWhoAmICmd)
	for _, c := range []*cobra.Command{authSignUpCmd, authSignInCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email")
		c.Flags().StringVar(&authPassword, "password", "", "Account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
}
