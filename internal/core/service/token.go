package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/starsky/backend/internal/core/domain"
)

const (
	tokenIssuer  = "com.starsky"
	tokenSubject = "Authentication"

	// TokenTTL is the fixed validity window of issued bearer tokens.
	TokenTTL = 24 * time.Hour
)

// TokenIssuer creates and verifies the HMAC-SHA512 signed bearer tokens that
// carry a user's identity and role claims.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer builds an issuer for the given signing secret. An empty
// secret is a configuration fault and is rejected outright; there is no
// built-in default to fall back to.
func NewTokenIssuer(secret string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token issuer: signing secret must not be empty")
	}
	return &TokenIssuer{secret: []byte(secret)}, nil
}

// Issue signs a token for the given user valid for TokenTTL from now.
func (t *TokenIssuer) Issue(userID int64, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    tokenSubject,
		"iss":    tokenIssuer,
		"id":     userID,
		"roleId": int(role),
		"iat":    now.Unix(),
		"exp":    now.Add(TokenTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(t.secret)
}

// Verify parses and validates a token string and extracts the principal.
// It fails closed: a bad signature, wrong issuer, expiry in the past, or a
// missing/non-numeric identity claim all yield domain.ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenString string) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS512.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return t.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	id, ok := numericClaim(claims, "id")
	if !ok {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	roleID, ok := numericClaim(claims, "roleId")
	if !ok {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{UserID: int64(id), RoleID: int(roleID)}, nil
}

// numericClaim reads a claim that must be a JSON number. Parsed JSON numbers
// always arrive as float64.
func numericClaim(claims jwt.MapClaims, name string) (float64, bool) {
	v, ok := claims[name].(float64)
	return v, ok
}
