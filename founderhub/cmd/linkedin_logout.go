package cmd

import (
	"fmt"

	"github.com/founderhub/founderhub-cli/pkg/auth"
	"github.com/spf13/cobra"
)

var logoutcmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored LinkedIn token",
	Long:  "Remove the stored LinkedIn access token from this machine",
}

func logout() *cobra.Command {
	logoutcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := auth.ClearToken(); err != nil {
			return err
		}

		fmt.Println("LinkedIn token removed.")
		return nil
	}

	return logoutcmd
}
