// Package cli implements the gigmarket command line client.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pratik-mahalle/gigmarket/pkg/client"
)

var rootCmd = &cobra.Command{
	Use:   "gigmarket",
	Short: "Command line client for the gigmarket marketplace API",
	Long: `gigmarket talks to a running marketplace server: browse offers,
place orders, manage reviews and inspect platform stats.

The server URL and token can also be set via the GIGMARKET_SERVER and
GIGMARKET_TOKEN environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("server", "http://localhost:8080", "server base URL")
	rootCmd.PersistentFlags().String("token", "", "bearer token for authenticated calls")

	viper.SetEnvPrefix("gigmarket")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))

	if path, err := configFilePath(); err == nil {
		viper.SetConfigFile(path)
		viper.ReadInConfig() // missing file is fine, flags/env still apply
	}
}

// configFilePath returns ~/.gigmarket/config.yaml
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gigmarket", "config.yaml"), nil
}

// apiClient builds a client from the resolved flags/environment
func apiClient() *client.Client {
	opts := []client.Option{}
	if token := viper.GetString("token"); token != "" {
		opts = append(opts, client.WithToken(token))
	}
	return client.New(viper.GetString("server"), opts...)
}
