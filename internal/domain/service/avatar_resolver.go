package service

// AvatarResolver derives the avatar reference stored on a new identity.
type AvatarResolver interface {
	AvatarURL(email string) string
}
