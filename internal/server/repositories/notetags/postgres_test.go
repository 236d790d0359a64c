package notetags

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohithmohanan1/Notes/internal/common"
)

func TestAdd_DuplicatePairIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO note_tags").
		WithArgs(int64(1), int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := NewPostgresRepository(db)
	_, err = repo.Add(context.Background(), 1, 2)
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestAdd_ReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO note_tags").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := NewPostgresRepository(db)
	jt, err := repo.Add(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), jt.ID)
	assert.Equal(t, int64(1), jt.NoteID)
	assert.Equal(t, int64(2), jt.TagID)
}

func TestRemove_ReportsWhetherPairExisted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM note_tags").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM note_tags").
		WithArgs(int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)

	removed, err := repo.Remove(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.False(t, removed)
}
