// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/founderhub/founderhub-cli/pkg/config"
	"github.com/spf13/cobra"
)

var configInitForce bool

func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the CLI configuration file",
		Long:  "Manage the FounderHub CLI configuration file",
	}

	cmd.AddCommand(configInit())

	return cmd
}

var configinitcmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Long:  "Generate a default configuration file under ~/.founderhub",
}

func configInit() *cobra.Command {
	configinitcmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configinitcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path, err := config.Generate(configInitForce)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", path)
		fmt.Println("Fill in client-id and author, then run: founderhub linkedin login")
		return nil
	}

	return configinitcmd
}
