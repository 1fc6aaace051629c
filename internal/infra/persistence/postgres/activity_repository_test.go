package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivity() *entity.Activity {
	return &entity.Activity{
		EventID:    uuid.New(),
		Type:       entity.ActivityPostLiked,
		ActorID:    uuid.New(),
		PostID:     uuid.New(),
		OwnerID:    uuid.New(),
		OccurredAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestActivityRepository_Record(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "activities"`) + `.*` + regexp.QuoteMeta(`ON CONFLICT ("event_id") DO NOTHING`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	activity := newActivity()
	recorded, err := repo.Record(context.Background(), activity)
	require.NoError(t, err)
	assert.True(t, recorded)
	assert.False(t, activity.RecordedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_Record_Redelivered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "activities"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	recorded, err := repo.Record(context.Background(), newActivity())
	require.NoError(t, err)
	assert.False(t, recorded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_Record_DriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "activities"`)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Record(context.Background(), newActivity())
	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)
}

func TestNullableID(t *testing.T) {
	assert.Nil(t, nullableID(uuid.Nil))

	id := uuid.New()
	require.NotNil(t, nullableID(id))
	assert.Equal(t, id, *nullableID(id))
}
