// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package middleware

import (
	"context"
	"net/http"

	"github.com/vyletran/atlastrip/internal/platform/apperr"
	"github.com/vyletran/atlastrip/internal/platform/constants"
	"github.com/vyletran/atlastrip/internal/platform/ctxutil"
	"github.com/vyletran/atlastrip/internal/platform/respond"
	"github.com/vyletran/atlastrip/internal/platform/sec"
)

// SessionResolver defines the interface needed to resolve session tokens in middleware.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the auth
// service implementation, allowing us to easily inject fakes during unit
// testing, and letting the two session strategies (server-stored, signed)
// slot in interchangeably.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*sec.Identity, error)
}

// Authenticate extracts and resolves the session cookie.
//
// # Flow
//  1. Check for the session cookie.
//  2. If absent, the request proceeds as anonymous.
//  3. If present, resolve the token via [SessionResolver].
//  4. A stale or invalid token also proceeds as anonymous — protected routes
//     turn that into 401 via [RequireAuth], public routes are unaffected.
//  5. Inject [*sec.Identity] into the request context for downstream use.
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Session Resolution ─────────────────────────────────────────
			identity, err := resolver.Resolve(request.Context(), cookie.Value)
			if err != nil || identity == nil {
				// Expired, revoked, or tampered token. Not an error by itself.
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.Identity] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetIdentity(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
