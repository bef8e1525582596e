package auth

import "time"

// Config drives token validation. When Enabled is false the HTTP layer
// skips the bearer check entirely.
type Config struct {
	Enabled bool
	Secret  string
}

// Claims are extracted from a verified access token.
type Claims struct {
	UserID    int64
	Email     string
	TokenType string
	ExpiresAt time.Time
}
