// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"time"

	"github.com/founderhub/founderhub-cli/pkg/constants"
	l "github.com/founderhub/founderhub-cli/pkg/login"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	clientId     string
	clientSecret string
	redirectUrl  string
	loginTimeout time.Duration
)

func init() {
	logincmd.Flags().StringVarP(&clientId, "client-id", "c", "", "LinkedIn OAuth2 client ID")
	logincmd.Flags().StringVarP(&clientSecret, "client-secret", "s", "", "LinkedIn OAuth2 client secret")
	logincmd.Flags().StringVarP(&redirectUrl, "redirect-url", "r", constants.DefaultRedirectURL, "Redirect URL registered with the LinkedIn application")
	logincmd.Flags().DurationVar(&loginTimeout, "timeout", 5*time.Minute, "How long to wait for the browser callback")

	// Bind flags to viper
	mustBindPFlag("client-id", logincmd.Flags().Lookup("client-id"))
	mustBindPFlag("client-secret", logincmd.Flags().Lookup("client-secret"))
	mustBindPFlag("redirect-url", logincmd.Flags().Lookup("redirect-url"))

	// Environment names kept from the original FounderHub deployment
	_ = viper.BindEnv("client-id", "LINKEDIN_CLIENT_ID")
	_ = viper.BindEnv("client-secret", "LINKEDIN_CLIENT_SECRET")
	_ = viper.BindEnv("redirect-url", "LINKEDIN_REDIRECT_URI")
}

var logincmd = &cobra.Command{
	Use:   "login",
	Short: "Connect your LinkedIn account",
	Long:  `Connect your LinkedIn account to FounderHub`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Update from viper (this gets env vars + config + flags)
		clientId = viper.GetString("client-id")
		clientSecret = viper.GetString("client-secret")
		redirectUrl = viper.GetString("redirect-url")
	},
}

func login() *cobra.Command {
	logincmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		ctx, cancel := context.WithTimeout(cmd.Context(), loginTimeout)
		defer cancel()

		return l.Login(ctx, clientId, clientSecret, redirectUrl, verbose)
	}

	return logincmd
}
