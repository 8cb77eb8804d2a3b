package identity

import "time"

// QueryCurrentUser names the session live query
const QueryCurrentUser = "identity.current_user"

// DefaultTokenTTL is the lifetime of credentials minted by IssueCredential
const DefaultTokenTTL = 24 * time.Hour

// Error messages returned in AuthResult
const (
	ErrMsgCredentialRejected = "sign-in failed: credential rejected"
	ErrMsgCredentialMissing  = "sign-in failed: credential is empty"
)

// Log messages
const (
	LogMsgSignedIn          = "User signed in"
	LogMsgSignedOut         = "User signed out"
	LogMsgSignInRejected    = "Sign-in rejected"
	LogMsgSessionPublishErr = "Failed to publish session change"
)
