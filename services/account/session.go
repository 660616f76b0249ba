package account

import (
	"errors"
	"time"

	"medico/models"

	"github.com/golang-jwt/jwt/v5"
)

// Sessions encodes and decodes the signed session cookie. The session carries
// the signed-in identity only; the backend bearer token lives in its own
// cookie and is never embedded here.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

// NewSessions builds a session codec signing with the given secret.
func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed session value for the given user.
func (s *Sessions) Issue(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"name": user.Name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Decode parses a session value back into the user it was issued for. Any
// invalid, expired or tampered value yields an error; callers treat that as
// an anonymous visitor, never as a page failure.
func (s *Sessions) Decode(value string) (*models.User, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("session does not contain a valid 'sub' claim")
	}
	name, _ := claims["name"].(string)
	if name == "" {
		name = sub
	}
	return &models.User{Username: sub, Name: name}, nil
}
