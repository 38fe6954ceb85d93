package cli

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show platform stats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := apiClient().GetBaseInfo(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
