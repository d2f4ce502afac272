package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the identity claim embedded in a session token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless bearer credentials: there is no revocation list and no
// refresh mechanism. Expiry forces re-login.
type TokenService interface {
	// IssueToken produces a signed, self-contained token embedding the
	// authenticated identity with an absolute expiry.
	IssueToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken verifies signature and expiry and returns the embedded
	// claim. All failure causes (bad signature, malformed token, expired)
	// surface uniformly; callers must not distinguish them in responses.
	ValidateToken(tokenString string) (*Claims, error)
}
