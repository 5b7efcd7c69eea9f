// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

var exchangeClient = &http.Client{
	Timeout: 10 * time.Second,
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// exchangeCode redeems the one-time authorization code for an access
// token. LinkedIn expects client credentials in the form body, not a
// basic-auth header.
func exchangeCode(ctx context.Context, cfg *oauth2.Config, code string) (*TokenRecord, error) {
	if code == "" {
		return nil, NewAuthError(ErrCallback, "authorization code is empty")
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", cfg.RedirectURL)
	form.Set("client_id", cfg.ClientID)
	form.Set("client_secret", cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, NewAuthErrorWithCause(ErrTransport, "failed to create token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := exchangeClient.Do(req)
	if err != nil {
		return nil, NewAuthErrorWithCause(ErrTransport, "token request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewAuthErrorWithCause(ErrTransport, "failed to read token response", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, NewAuthErrorWithCause(ErrProtocol, "failed to unmarshal token response", err)
	}
	if tr.AccessToken == "" {
		return nil, NewAuthError(ErrProtocol, "access token missing from provider response")
	}

	return &TokenRecord{
		AccessToken: tr.AccessToken,
		ExpiresIn:   tr.ExpiresIn,
		RetrievedAt: time.Now().UTC(),
	}, nil
}
