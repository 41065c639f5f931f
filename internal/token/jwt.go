package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"personalbook/internal/model"
)

// Claims represents the JWT payload of a session token. The claim names
// (role, id, username) are part of the API contract with existing clients.
type Claims struct {
	jwt.RegisteredClaims
	Role     string `json:"role"`
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// sessionTTL bounds how long a leaked token stays valid. The tokens are
// otherwise long-lived bearer credentials with no refresh flow.
const sessionTTL = 30 * 24 * time.Hour

// Generate creates a signed session token for the given principal.
func (j *JWT) Generate(session model.Session) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		Role:     string(session.Role),
		UserID:   session.ID,
		Username: session.Username,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a session token and extracts the principal.
func (j *JWT) Parse(tokenString string) (model.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return model.Session{}, fmt.Errorf("session token is invalid")
	}

	role := model.Role(claims.Role)
	if role != model.RoleMaster && role != model.RoleUser {
		return model.Session{}, fmt.Errorf("unknown role claim: %q", claims.Role)
	}

	return model.Session{
		Role:     role,
		ID:       claims.UserID,
		Username: claims.Username,
	}, nil
}
