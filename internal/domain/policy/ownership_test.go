package policy

import (
	"testing"

	domainerrors "devconnector/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name  string
		actor uuid.UUID
		owner uuid.UUID
		want  bool
	}{
		{name: "owner acts on own resource", actor: owner, owner: owner, want: true},
		{name: "other identity is rejected", actor: other, owner: owner, want: false},
		{name: "nil actor is rejected", actor: uuid.Nil, owner: owner, want: false},
		{name: "nil owner is rejected", actor: owner, owner: uuid.Nil, want: false},
		{name: "nil on both sides is rejected", actor: uuid.Nil, owner: uuid.Nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.actor, tt.owner))
		})
	}
}

func TestRequireOwner(t *testing.T) {
	owner := uuid.New()

	assert.NoError(t, RequireOwner(owner, owner))
	assert.ErrorIs(t, RequireOwner(uuid.New(), owner), domainerrors.ErrNotAuthorized)
}
