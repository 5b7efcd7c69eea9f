// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package constants

const (
	// DefaultRedirectURL must exactly match the redirect URI registered
	// with the LinkedIn developer application.
	DefaultRedirectURL = "http://localhost:3000/callback"

	// ScopeMemberSocial allows posting on the member's behalf.
	ScopeMemberSocial = "w_member_social"

	// LinkedInUGCPostsURL is the LinkedIn UGC share API endpoint.
	LinkedInUGCPostsURL = "https://api.linkedin.com/v2/ugcPosts"
)
