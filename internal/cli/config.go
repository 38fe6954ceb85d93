package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the CLI configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.gigmarket/config.yaml with the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return err
		}
		if err := viper.WriteConfigAs(path); err != nil {
			return err
		}
		printf("wrote %s", path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value (server, token)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		switch key {
		case "server", "token":
		default:
			return fmt.Errorf("unknown config key %q", key)
		}

		path, err := configFilePath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return err
		}

		viper.Set(key, args[1])
		if err := viper.WriteConfigAs(path); err != nil {
			return err
		}
		printf("%s = %s", key, args[1])
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !viper.IsSet(args[0]) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		printf("%s", viper.GetString(args[0]))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configSetCmd, configGetCmd)
	rootCmd.AddCommand(configCmd)
}
