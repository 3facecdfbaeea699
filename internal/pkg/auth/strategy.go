package auth

import "time"

// TokenStrategy issues and verifies bearer tokens carrying a user identifier.
type TokenStrategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
