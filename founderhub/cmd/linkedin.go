package cmd

import (
	"github.com/spf13/cobra"
)

func LinkedIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkedin",
		Short: "LinkedIn account operations",
		Long:  "Connect a LinkedIn account and publish posts",
	}

	cmd.AddCommand(login())
	cmd.AddCommand(post())
	cmd.AddCommand(status())
	cmd.AddCommand(logout())

	return cmd
}
