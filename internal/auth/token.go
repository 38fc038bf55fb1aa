package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("token is missing")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenMalformed     = errors.New("token is malformed")
)

type Claims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// Credentials is the single identity the service accepts on login.
type Credentials struct {
	Username string
	Password string
}

// Service issues and verifies HS256 session tokens. The signing secret is
// injected at construction and never rotated at runtime.
type Service struct {
	secret []byte
	creds  Credentials
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, creds Credentials, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		creds:  creds,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock swaps the time source; tests use it to exercise expiry.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Login checks the supplied pair against the configured identity and mints
// a token on match.
func (s *Service) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return s.GenerateToken(username)
}

func (s *Service) GenerateToken(username string) (string, error) {
	now := s.now()
	c := Claims{
		User: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

// ParseToken verifies signature and expiry, returning typed errors that the
// endpoint layer maps onto user-visible messages.
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrTokenMissing
	}
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
