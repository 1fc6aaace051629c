package auth

import (
	"testing"
	"time"

	"devconnector/config"
	"devconnector/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestTokenService(t *testing.T, secret string, ttl time.Duration, clock *fakeClock) service.TokenService {
	t.Helper()
	svc, err := NewJWTServiceWithClock(secret, ttl, clock.Now)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueThenVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokenService(t, "secret-a", time.Hour, clock)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_PayloadCarriesUserID(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokenService(t, "secret-a", time.Hour, clock)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	user, ok := claims["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, userID.String(), user["id"])
	assert.EqualValues(t, clock.now.Add(time.Hour).Unix(), claims["exp"])
}

func TestJWTService_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	ttl := 360000 * time.Second
	svc := newTestTokenService(t, "secret-a", ttl, clock)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)

	clock.Advance(ttl - time.Second)
	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	clock.Advance(time.Second)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	clock.Advance(time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_TamperedToken(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokenService(t, "secret-a", time.Hour, clock)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	headerEnd := indexOf(token, '.')
	payloadEnd := headerEnd + 1 + indexOf(token[headerEnd+1:], '.')
	positions := map[string]int{
		"header":    0,
		"payload":   headerEnd + 1 + (payloadEnd-headerEnd)/2,
		"signature": payloadEnd + 1,
	}

	for name, pos := range positions {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(flipByte(token, pos))
			assert.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}

func TestJWTService_DifferentSecret(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	issuer := newTestTokenService(t, "secret-a", time.Hour, clock)
	verifier := newTestTokenService(t, "secret-b", time.Hour, clock)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokenService(t, "secret-a", time.Hour, clock)
	userID := uuid.New().String()

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user": map[string]any{"id": userID},
		"exp":  clock.now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]any{"id": userID},
	}).SignedString([]byte("secret-a"))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]any{"id": "not-a-uuid"},
		"exp":  clock.now.Add(time.Hour).Unix(),
	}).SignedString([]byte("secret-a"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"user": map[string]any{"id": userID},
		"exp":  clock.now.Add(time.Hour).Unix(),
	}).SignedString([]byte("secret-a"))
	require.NoError(t, err)

	tests := map[string]string{
		"alg none":        noneToken,
		"missing exp":     noExpiry,
		"malformed id":    badSubject,
		"other algorithm": hs512,
		"garbage":         "not.a.token",
		"empty":           "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}

func TestNewJWTService(t *testing.T) {
	t.Run("requires a secret", func(t *testing.T) {
		_, err := NewJWTService(&config.Config{})
		assert.Error(t, err)
	})

	t.Run("defaults ttl", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SecretKey.Access = "secret-a"

		svc, err := NewJWTService(cfg)
		require.NoError(t, err)
		assert.Equal(t, DefaultTokenTTL, svc.(*jwtService).ttl)
	})

	t.Run("uses configured ttl", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Minute}}
		cfg.SecretKey.Access = "secret-a"

		svc, err := NewJWTService(cfg)
		require.NoError(t, err)
		assert.Equal(t, time.Minute, svc.(*jwtService).ttl)
	})
}

func indexOf(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}

	return -1
}

func flipByte(token string, pos int) string {
	replacement := byte('A')
	if token[pos] == 'A' {
		replacement = 'B'
	}

	return token[:pos] + string(replacement) + token[pos+1:]
}
