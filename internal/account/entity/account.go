package entity

import "time"

// Account is the per-email account record. Email is the natural key and is
// compared byte-for-byte: it is never trimmed or case-folded.
type Account struct {
	ID         string
	Email      string
	FullName   string
	Password   string // bcrypt hash
	IsVerified bool

	// ResetChallenge and VerifyChallenge are independent slots. A nil slot
	// means no flow of that kind is in flight.
	ResetChallenge  *Challenge
	VerifyChallenge *Challenge

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Challenge is a one-time code with its absolute expiry instant.
type Challenge struct {
	Code      string
	ExpiresAt int64 // unix milliseconds
}

// Matches reports whether the challenge exists and its code equals the given
// one exactly. A near-miss (wrong case, whitespace, partial) never matches.
func (c *Challenge) Matches(code string) bool {
	return c != nil && c.Code == code
}

// Expired reports whether the challenge expiry is strictly in the past at the
// given instant. A code checked exactly at its expiry millisecond is still
// accepted.
func (c *Challenge) Expired(now time.Time) bool {
	return c != nil && c.ExpiresAt < now.UnixMilli()
}
