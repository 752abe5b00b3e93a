// Package otp provides generation of short-lived one-time passcodes.
//
// Codes are plain 6-digit numeric strings drawn uniformly from a
// cryptographic source. They are meant to be delivered out-of-band (email)
// and compared by exact string match.
package otp
