// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/founderhub/founderhub-cli/pkg/auth"
	"github.com/founderhub/founderhub-cli/pkg/linkedin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	postMessage string
	postAuthor  string
	postYes     bool
)

func init() {
	postcmd.Flags().StringVarP(&postMessage, "message", "m", "", "Text of the post (prompted for when omitted)")
	postcmd.Flags().StringVarP(&postAuthor, "author", "a", "", "Author URN, e.g. urn:li:person:abc123")
	postcmd.Flags().BoolVarP(&postYes, "yes", "y", false, "Publish without confirmation")

	// Bind flags to viper
	mustBindPFlag("message", postcmd.Flags().Lookup("message"))
	mustBindPFlag("author", postcmd.Flags().Lookup("author"))

	_ = viper.BindEnv("author", "LINKEDIN_PERSON_URN")
}

var postcmd = &cobra.Command{
	Use:   "post",
	Short: "Publish a post to LinkedIn",
	Long: `Publish a text post to LinkedIn on behalf of the connected account.

Examples:
  # Publish directly
  founderhub linkedin post --author urn:li:person:abc123 -m "We just shipped!"

  # Compose interactively and confirm before publishing
  founderhub linkedin post`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Update from viper (this gets env vars + config + flags)
		postMessage = viper.GetString("message")
		postAuthor = viper.GetString("author")
	},
}

func post() *cobra.Command {
	postcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		record, err := auth.LoadToken()
		if err != nil {
			return err
		}
		if err := auth.CheckTokenExpiry(record); err != nil {
			return err
		}

		if postAuthor == "" {
			return fmt.Errorf("no author URN configured; pass --author or set LINKEDIN_PERSON_URN")
		}

		if postMessage == "" {
			input := huh.NewText().
				Title("Post content").
				Description("What do you want to share on LinkedIn?").
				Value(&postMessage)
			if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
				return fmt.Errorf("failed to read post content: %w", err)
			}
		}
		if strings.TrimSpace(postMessage) == "" {
			return fmt.Errorf("post content is empty")
		}

		if !postYes {
			renderPreview(postMessage)

			confirmed := false
			confirm := huh.NewConfirm().
				Title("Publish this post to LinkedIn?").
				Value(&confirmed)
			if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Post not published.")
				return nil
			}
		}

		poster := linkedin.NewPoster(record.AccessToken, postAuthor)
		result, err := poster.Post(cmd.Context(), postMessage)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Post published! ID: %s\n", result.ID)
		return nil
	}

	return postcmd
}

// renderPreview prints the post as it will read, falling back to the raw
// text when the terminal renderer cannot be built.
func renderPreview(message string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(message)
		return
	}

	rendered, err := r.Render(message)
	if err != nil {
		fmt.Println(message)
		return
	}

	fmt.Print(rendered)
}
