package cli

import (
	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/gigmarket/pkg/client"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Authenticate and print a bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := cmd.Flags().GetString("password")
		if err != nil {
			return err
		}

		resp, err := apiClient().Login(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}

		printf("export GIGMARKET_TOKEN=%s", resp.Token)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <username> <email>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := cmd.Flags().GetString("password")
		if err != nil {
			return err
		}
		accountType, err := cmd.Flags().GetString("type")
		if err != nil {
			return err
		}

		resp, err := apiClient().Register(cmd.Context(), client.RegisterInput{
			Username:       args[0],
			Email:          args[1],
			Password:       password,
			RepeatPassword: password,
			Type:           accountType,
		})
		if err != nil {
			return err
		}

		printf("registered user %d (%s)", resp.UserID, resp.Username)
		printf("export GIGMARKET_TOKEN=%s", resp.Token)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("password", "", "account password")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("type", "customer", "account type (customer or business)")
	registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, registerCmd)
}
