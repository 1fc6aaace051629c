package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"devconnector/config"
	deliverycontext "devconnector/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})

	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	// Not-found lookups are expected and stay quiet.
	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, base.String())

	l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)
	assert.Contains(t, base.String(), "GORM query failed")

	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)))
	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, scoped.String(), "GORM slow query")
}
