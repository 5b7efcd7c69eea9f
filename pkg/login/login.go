// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package login

import (
	"context"
	"fmt"
	"time"

	"github.com/founderhub/founderhub-cli/pkg/auth"
)

// Login runs the LinkedIn connection flow and reports the outcome to the
// user.
func Login(ctx context.Context, clientId, clientSecret, redirectUrl string, verbose bool) error {
	if clientId == "" || clientSecret == "" {
		return fmt.Errorf("client-id and client-secret are required; pass the flags or set LINKEDIN_CLIENT_ID / LINKEDIN_CLIENT_SECRET")
	}

	if verbose {
		fmt.Printf(" ClientId: %s\n", clientId)
		fmt.Printf(" CallbackUrl: %s\n", redirectUrl)
		fmt.Println()
	}

	record, err := auth.Authenticate(ctx, clientId, clientSecret, redirectUrl)
	if err != nil {
		return err
	}

	fmt.Println("Successfully connected your LinkedIn account!")
	if record.ExpiresIn > 0 {
		expiry := record.RetrievedAt.Add(time.Duration(record.ExpiresIn) * time.Second)
		fmt.Printf("The access token expires %s.\n", expiry.Format(time.RFC1123))
	}
	fmt.Println("You can now publish with: founderhub linkedin post")
	return nil
}
