// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/founderhub/founderhub-cli/pkg/constants"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"
)

// oauthEndpoint is swapped out by tests for a local fake provider.
var oauthEndpoint = linkedin.Endpoint

func oauthConfig(clientId string, clientSecret string, redirectUrl string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientId,
		ClientSecret: clientSecret,
		RedirectURL:  redirectUrl,
		Scopes:       []string{constants.ScopeMemberSocial},
		Endpoint:     oauthEndpoint,
	}
}

// Authenticate runs the authorization-code flow end to end: it binds the
// local callback listener, sends the browser to LinkedIn, waits for the
// single redirect, exchanges the code and persists the resulting token.
// It blocks until the callback arrives or ctx is done.
func Authenticate(ctx context.Context, clientId string, clientSecret string, redirectUrl string) (*TokenRecord, error) {
	oauth2Config := oauthConfig(clientId, clientSecret, redirectUrl)

	// Get code.
	var callbackRes = make(chan callbackResult, 1)

	l, err := newCallbackListener(callbackRes, redirectUrl)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = l.Close()
	}()

	// Empty state keeps the query down to the four parameters LinkedIn
	// has registered for this application.
	authURL := oauth2Config.AuthCodeURL("")

	fmt.Println("Attempting to automatically open the LinkedIn login page in your default browser.")
	fmt.Printf("If the browser does not open or you wish to use a different device to authorize this request, open the following URL:\n\n%s\n\n", authURL)

	if err := OpenBrowser(authURL); err != nil {
		fmt.Println("Failed to open browser automatically. Please visit the login page manually.")
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Prefix = "Waiting for LinkedIn authorization... "
	s.Start()
	defer s.Stop()

	var cs callbackResult
	select {
	case cs = <-callbackRes:
	case <-ctx.Done():
		return nil, NewAuthErrorWithCause(ErrCallback, "timed out waiting for the authorization callback", ctx.Err())
	}

	if cs.Error == nil {
		s.FinalMSG = "✓ Authorization received!\n"
	}
	s.Stop()

	if cs.Error != nil {
		return nil, cs.Error
	}

	record, err := exchangeCode(ctx, oauth2Config, cs.Code)
	if err != nil {
		return nil, err
	}

	if err := SaveToken(record); err != nil {
		return nil, err
	}

	return record, nil
}
