// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func Test_AuthCodeURL_Params(t *testing.T) {
	cfg := oauthConfig("X", "secret", "http://localhost:3000")

	authURL := cfg.AuthCodeURL("")
	assert.True(t, strings.HasPrefix(authURL, "https://www.linkedin.com/oauth/v2/authorization?"))

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Len(t, query, 4)
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "X", query.Get("client_id"))
	assert.Equal(t, "http://localhost:3000", query.Get("redirect_uri"))
	assert.Equal(t, "w_member_social", query.Get("scope"))
}

func withFakeProvider(t *testing.T, tokenHandler http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(tokenHandler)
	t.Cleanup(srv.Close)

	origEndpoint := oauthEndpoint
	oauthEndpoint = oauth2.Endpoint{
		AuthURL:  srv.URL + "/authorization",
		TokenURL: srv.URL + "/accessToken",
	}
	t.Cleanup(func() { oauthEndpoint = origEndpoint })
}

func withFakeBrowser(t *testing.T, open func(url string) error) {
	t.Helper()

	origOpen := OpenBrowser
	OpenBrowser = open
	t.Cleanup(func() { OpenBrowser = origOpen })
}

func tokenFilePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(os.Getenv("HOME"), ".founderhub", "linkedin", "token.json")
}

func Test_Authenticate_Success(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	withFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostFormValue("grant_type"))
		assert.Equal(t, "ABC123", r.PostFormValue("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"T1","expires_in":3600}`))
	})

	var openedURL string
	withFakeBrowser(t, func(u string) error {
		openedURL = u
		// Simulate the provider redirecting the browser back.
		resp, err := http.Get("http://localhost:18061/callback?code=ABC123")
		if err == nil {
			_ = resp.Body.Close()
		}
		return err
	})

	record, err := Authenticate(context.Background(), "client-x", "secret-x", "http://localhost:18061/callback")
	require.NoError(t, err)

	assert.Equal(t, "T1", record.AccessToken)
	assert.Contains(t, openedURL, "client_id=client-x")
	assert.Contains(t, openedURL, "scope=w_member_social")

	saved, err := LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "T1", saved.AccessToken)

	data, err := os.ReadFile(tokenFilePath(t))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"access_token": "T1"`)
}

func Test_Authenticate_CallbackFailure_NothingPersisted(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	withFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("token endpoint should not be called without a code")
	})

	withFakeBrowser(t, func(u string) error {
		resp, err := http.Get("http://localhost:18062/callback?error=user_cancelled_login")
		if err == nil {
			_ = resp.Body.Close()
		}
		return err
	})

	_, err := Authenticate(context.Background(), "client-x", "secret-x", "http://localhost:18062/callback")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ErrCallback, authErr.Code)
	assert.NoFileExists(t, tokenFilePath(t))
}

func Test_Authenticate_ExchangeRejected_NothingPersisted(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	withFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	})

	withFakeBrowser(t, func(u string) error {
		resp, err := http.Get("http://localhost:18063/callback?code=STALE")
		if err == nil {
			_ = resp.Body.Close()
		}
		return err
	})

	_, err := Authenticate(context.Background(), "client-x", "secret-x", "http://localhost:18063/callback")
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.NoFileExists(t, tokenFilePath(t))
}

func Test_Authenticate_Timeout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	withFakeBrowser(t, func(u string) error {
		// The user never completes the authorization.
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Authenticate(ctx, "client-x", "secret-x", "http://localhost:18064/callback")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ErrCallback, authErr.Code)
	assert.NoFileExists(t, tokenFilePath(t))
}
