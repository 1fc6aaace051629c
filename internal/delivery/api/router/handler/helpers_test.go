package handler

import (
	"testing"

	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/errors"

	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) []domainerrors.FieldError {
	t.Helper()

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)

	return verr.FieldErrors()
}
