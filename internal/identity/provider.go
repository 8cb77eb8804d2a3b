// Package identity holds the session boundary: who is signed in, and how a
// caller signs in or out.
package identity

import (
	"context"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/live"
)

// Provider supplies the current user and the sign-in operations
type Provider interface {
	// Observe delivers the current user, or nil when nobody is signed in,
	// once now and again after every session change
	Observe(ctx context.Context) *live.Subscription[*domain.User]
	CurrentUser() *domain.User
	IsLoggedIn() bool
	SignInWithCredential(ctx context.Context, token string) domain.AuthResult
	SignInAnonymously(ctx context.Context) domain.AuthResult
	SignOut(ctx context.Context)
}
