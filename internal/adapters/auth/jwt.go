package auth

import (
	"errors"
	"file-processor/internal/core/domain"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims holds the registered claims plus the id of the authenticated user
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// JWT issues and verifies HS256 access tokens. It implements port.TokenVerifier.
type JWT struct {
	secret []byte
	issuer string
}

// NewJWT returns JWT
func NewJWT(secret string, issuer string) *JWT {
	return &JWT{secret: []byte(secret), issuer: issuer}
}

// GenerateToken signs a token for userID valid for validity
func (j *JWT) GenerateToken(userID uuid.UUID, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID: userID.String(),
	})

	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify returns the user id carried by tokenString
func (j *JWT) Verify(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%w: token expired", domain.ErrUnauthenticated)
		}
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	if !token.Valid {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user_id claim", domain.ErrUnauthenticated)
	}

	return userID, nil
}
