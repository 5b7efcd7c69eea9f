package cmd

import (
	"fmt"
	"time"

	"github.com/founderhub/founderhub-cli/pkg/auth"
	"github.com/spf13/cobra"
)

var statuscmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored LinkedIn token status",
	Long:  "Show whether a LinkedIn access token is stored and whether it has expired",
}

func status() *cobra.Command {
	statuscmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		record, err := auth.LoadToken()
		if err != nil {
			return err
		}

		fmt.Printf("Access token stored (retrieved %s)\n", record.RetrievedAt.Format(time.RFC1123))
		if record.Expired() {
			fmt.Println("The token has expired. Re-run `founderhub linkedin login`.")
		} else if record.ExpiresIn > 0 {
			expiry := record.RetrievedAt.Add(time.Duration(record.ExpiresIn) * time.Second)
			fmt.Printf("Expires %s\n", expiry.Format(time.RFC1123))
		}

		return nil
	}

	return statuscmd
}
