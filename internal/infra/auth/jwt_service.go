package auth

import (
	"time"

	"devconnector/config"
	"devconnector/internal/domain/service"
	"devconnector/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the lifetime of a credential token when none is configured.
const DefaultTokenTTL = 360000 * time.Second

// tokenClaims is the payload {"user":{"id":...}} plus the registered iat/exp claims.
type tokenClaims struct {
	User tokenUser `json:"user"`
	jwt.RegisteredClaims
}

type tokenUser struct {
	ID string `json:"id"`
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds the token service from the process-wide secret and TTL.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := DefaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return NewJWTServiceWithClock(cfg.SecretKey.Access, ttl, time.Now)
}

// NewJWTServiceWithClock builds the token service with an explicit secret, TTL and clock.
func NewJWTServiceWithClock(secret string, ttl time.Duration, now func() time.Time) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.Errorf("token ttl must be positive, got %s", ttl)
	}
	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs a token for userID that expires ttl after now.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	issuedAt := s.now()
	claims := tokenClaims{
		User: tokenUser{ID: userID.String()},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks algorithm, signature and expiry. Any failure collapses to ErrInvalidToken.
func (s *jwtService) Verify(raw string) (uuid.UUID, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.User.ID)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return userID, nil
}
