// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func exchangeTestConfig(tokenUrl string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client-x",
		ClientSecret: "secret-x",
		RedirectURL:  "http://localhost:3000/callback",
		Endpoint: oauth2.Endpoint{
			TokenURL: tokenUrl,
		},
	}
}

func Test_ExchangeCode_Success(t *testing.T) {
	var seenForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		seenForm = map[string]string{
			"grant_type":    r.PostFormValue("grant_type"),
			"code":          r.PostFormValue("code"),
			"redirect_uri":  r.PostFormValue("redirect_uri"),
			"client_id":     r.PostFormValue("client_id"),
			"client_secret": r.PostFormValue("client_secret"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"T1","expires_in":5184000}`))
	}))
	defer srv.Close()

	record, err := exchangeCode(context.Background(), exchangeTestConfig(srv.URL), "ABC123")
	require.NoError(t, err)

	assert.Equal(t, "T1", record.AccessToken)
	assert.Equal(t, int64(5184000), record.ExpiresIn)
	assert.False(t, record.RetrievedAt.IsZero())

	assert.Equal(t, map[string]string{
		"grant_type":    "authorization_code",
		"code":          "ABC123",
		"redirect_uri":  "http://localhost:3000/callback",
		"client_id":     "client-x",
		"client_secret": "secret-x",
	}, seenForm)
}

func Test_ExchangeCode_MissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := exchangeCode(context.Background(), exchangeTestConfig(srv.URL), "ABC123")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ErrProtocol, authErr.Code)
}

func Test_ExchangeCode_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	_, err := exchangeCode(context.Background(), exchangeTestConfig(srv.URL), "ABC123")
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "invalid_client")
}

func Test_ExchangeCode_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := exchangeCode(context.Background(), exchangeTestConfig(srv.URL), "ABC123")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ErrTransport, authErr.Code)
}

func Test_ExchangeCode_EmptyCode(t *testing.T) {
	_, err := exchangeCode(context.Background(), exchangeTestConfig("http://localhost:1/token"), "")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ErrCallback, authErr.Code)
}
