// Package gravatar derives avatar links from e-mail addresses.
package gravatar

import (
	"crypto/md5" //nolint:gosec // gravatar addresses avatars by md5
	"encoding/hex"
	"strings"

	"devconnector/internal/domain/service"
)

const avatarBaseURL = "https://www.gravatar.com/avatar/"

type resolver struct{}

// NewResolver returns an AvatarResolver backed by gravatar.com.
func NewResolver() service.AvatarResolver {
	return resolver{}
}

// AvatarURL returns the 200px, pg-rated gravatar of email with the mystery-man fallback.
func (resolver) AvatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email)))) //nolint:gosec

	return avatarBaseURL + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
