// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload embedded inside a signed session token.
//
// # Why custom claims?
//
// By embedding the UserID and Email directly inside the token, the signed
// session strategy can reconstruct the holder's identity without a session
// store lookup. Claim names are abbreviated to keep the cookie small.
type SessionClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"uid"`
	Email  string `json:"eml"`
}

// SignedTokenService issues and verifies HMAC-signed (HS256) session tokens.
//
// This backs the stateless session strategy: tokens are self-contained and
// cannot be revoked individually, only invalidated wholesale by rotating the
// signing secret.
type SignedTokenService struct {
	secret []byte
	issuer string
}

// NewSignedTokenService creates a SignedTokenService with the given secret.
func NewSignedTokenService(secret, issuer string) (*SignedTokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: session secret must not be empty")
	}
	return &SignedTokenService{secret: []byte(secret), issuer: issuer}, nil
}

// Generate creates a signed session token bound to the given user, valid for
// timeToLive from now. It returns the token and its absolute expiry.
func (service *SignedTokenService) Generate(userID, email string, timeToLive time.Duration) (string, time.Time, error) {
	currentTime := time.Now()
	expiresAt := currentTime.Add(timeToLive)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return signedToken, expiresAt, nil
}

// Verify checks the signature and expiry of a signed session token.
func (service *SignedTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid session token claims")
	}

	return claims, nil
}
