// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/founderhub/founderhub-cli/pkg/constants"
)

// Poster publishes UGC shares on behalf of an authorized member.
type Poster struct {
	accessToken string
	author      string
	apiUrl      string
	client      *http.Client
}

// NewPoster returns a Poster for the given access token and author URN
// (e.g. urn:li:person:abc123).
func NewPoster(accessToken string, author string) *Poster {
	return &Poster{
		accessToken: accessToken,
		author:      author,
		apiUrl:      constants.LinkedInUGCPostsURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type shareCommentary struct {
	Text string `json:"text"`
}

type shareContent struct {
	ShareCommentary    shareCommentary `json:"shareCommentary"`
	ShareMediaCategory string          `json:"shareMediaCategory"`
}

type ugcPost struct {
	Author          string                  `json:"author"`
	LifecycleState  string                  `json:"lifecycleState"`
	SpecificContent map[string]shareContent `json:"specificContent"`
	Visibility      map[string]string       `json:"visibility"`
}

// PostResult is the subset of the UGC response the CLI reports back.
type PostResult struct {
	ID string `json:"id"`
}

// Post publishes a text-only share. LinkedIn answers 201 Created on
// success.
func (p *Poster) Post(ctx context.Context, message string) (*PostResult, error) {
	payload := ugcPost{
		Author:         p.author,
		LifecycleState: "PUBLISHED",
		SpecificContent: map[string]shareContent{
			"com.linkedin.ugc.ShareContent": {
				ShareCommentary:    shareCommentary{Text: message},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal post payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiUrl, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+p.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("failed to publish post, status code: %d: %s", resp.StatusCode, string(respBody))
	}

	var result PostResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}
