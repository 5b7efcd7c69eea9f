package auth

import "time"

// callbackResult is resolved exactly once per flow by the local callback
// handler.
type callbackResult struct {
	Code  string
	Error error
}

// TokenRecord is the durable output of a successful login flow. It is
// overwritten, never appended, on each exchange.
type TokenRecord struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in,omitempty"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

// Expired reports whether the token's lifetime has elapsed. Records
// without a lifetime never expire locally.
func (r *TokenRecord) Expired() bool {
	if r.ExpiresIn <= 0 {
		return false
	}
	return time.Now().After(r.RetrievedAt.Add(time.Duration(r.ExpiresIn) * time.Second))
}
