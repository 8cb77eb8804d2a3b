package handler

import (
	"net/http"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/identity"
)

// CredentialRequest carries an externally issued sign-in token
type CredentialRequest struct {
	Token string `json:"token" validate:"required,max=8192"`
}

// SessionResponse describes the current session
type SessionResponse struct {
	SignedIn bool         `json:"signedIn"`
	User     *domain.User `json:"user,omitempty"`
}

// HandleGetSession returns the signed-in user, if any
func HandleGetSession(provider identity.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := provider.CurrentUser()
		respondJSON(w, http.StatusOK, SessionResponse{SignedIn: user != nil, User: user})
	}
}

// HandleSignInWithCredential exchanges a credential for a session
func HandleSignInWithCredential(provider identity.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sign in"); err != nil {
			return
		}
		respondAuth(w, provider.SignInWithCredential(r.Context(), req.Token))
	}
}

// HandleSignInAnonymously starts a guest session
func HandleSignInAnonymously(provider identity.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondAuth(w, provider.SignInAnonymously(r.Context()))
	}
}

// HandleSignOut ends the session
func HandleSignOut(provider identity.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider.SignOut(r.Context())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSignedOut})
	}
}

func respondAuth(w http.ResponseWriter, result domain.AuthResult) {
	if !result.IsSuccess() {
		respondJSON(w, http.StatusUnauthorized, result)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
