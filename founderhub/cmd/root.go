// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/founderhub/founderhub-cli/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

var rootCmd = &cobra.Command{
	Use:   "founderhub",
	Short: "FounderHub CLI",
	Long:  "FounderHub CLI - Connect your accounts and share your startup's story",
}

func Execute() error {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(LinkedIn())
	rootCmd.AddCommand(Config())

	return rootCmd.Execute()
}

// initConfig wires the optional config file into viper. Flags and
// LINKEDIN_* environment variables take precedence over file values.
func initConfig() {
	configFile, err := config.Path()
	if err != nil {
		return
	}
	viper.SetConfigFile(configFile)
	// A missing config file is fine; flags and env still apply.
	_ = viper.ReadInConfig()
}

func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %q: %v", key, err))
	}
}
