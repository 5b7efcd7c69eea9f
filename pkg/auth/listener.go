// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package auth

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
)

// newCallbackListener binds the redirect URI's host:port and serves the
// single OAuth callback, resolving res exactly once. The caller closes the
// returned listener once the result has been received. A bind failure also
// guards against two flows running at once: the second one fails here,
// before any browser is opened.
func newCallbackListener(res chan callbackResult, redirectUrl string) (net.Listener, error) {
	parsed, err := url.Parse(redirectUrl)
	if err != nil || parsed.Host == "" {
		return nil, NewAuthErrorWithCause(ErrStartup, fmt.Sprintf("invalid redirect URL %q", redirectUrl), err)
	}

	l, err := net.Listen("tcp", parsed.Host)
	if err != nil {
		return nil, NewAuthErrorWithCause(ErrStartup, fmt.Sprintf("failed to bind %s", parsed.Host), err)
	}

	callbackPath := parsed.Path
	if callbackPath == "" {
		callbackPath = "/"
	}

	var once sync.Once
	go func() {
		_ = http.Serve(l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handleCallback(w, r, callbackPath, &once, res)
		}))
	}()

	return l, nil
}

// handleCallback serves the one redirect the provider sends back. Stray
// requests (favicons, health probes) get a 404 and do not consume the
// one-shot.
func handleCallback(w http.ResponseWriter, r *http.Request, callbackPath string, once *sync.Once, res chan callbackResult) {
	if r.URL.Path != callbackPath {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query()
	code := query.Get("code")
	errorParam := query.Get("error")

	if errorParam != "" {
		reason := errorParam
		if desc := query.Get("error_description"); desc != "" {
			reason = errorParam + ": " + desc
		}
		writePage(w, http.StatusBadRequest, getFailureHtml())
		once.Do(func() {
			res <- callbackResult{Error: NewAuthError(ErrCallback, "provider returned an error: "+reason)}
		})
		return
	}

	if code == "" {
		writePage(w, http.StatusBadRequest, getFailureHtml())
		once.Do(func() {
			res <- callbackResult{Error: NewAuthError(ErrCallback, "no authorization code received")}
		})
		return
	}

	writePage(w, http.StatusOK, getSuccessHtml())
	once.Do(func() {
		res <- callbackResult{Code: code}
	})
}

func writePage(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprint(w, body)
}
