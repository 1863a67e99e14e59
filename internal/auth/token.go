package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, malformed payload, or expiry. Callers must not
// distinguish between them in responses.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the standard claims plus the owning user's ID. The token
// never embeds the password hash or profile fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Signer issues and verifies HS256 bearer tokens with a fixed expiry.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

func NewSigner(secret []byte, ttl time.Duration) *Signer {
	return &Signer{secret: secret, ttl: ttl}
}

// Issue signs a token binding userID with an expiry of now+ttl.
func (s *Signer) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the bound user ID.
func (s *Signer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
