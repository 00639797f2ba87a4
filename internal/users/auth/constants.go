// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// SessionTTL is the duration a session remains valid.
	// Long-lived (30 days) to provide a good user experience for a
	// trip-planning tool people return to sporadically.
	SessionTTL = 30 * 24 * time.Hour

	// SessionTokenLength is the byte length of the random secure session token.
	SessionTokenLength = 32

	// PasswordMinLength is the minimum accepted password length at signup.
	PasswordMinLength = 8

	// EmailMaxLength bounds the accepted email length at signup.
	EmailMaxLength = 254
)
