package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/oakheim/blog-comments/domain"
	mysqlRepo "github.com/oakheim/blog-comments/internal/repository/mysql"
)

func TestCommentGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewCommentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentGetByID_StorageErrorIsNotNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewCommentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE id = \\?").
		WillReturnError(context.DeadlineExceeded)

	_, err := repo.GetByID(context.Background(), 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDeleteWithReplies_CascadesSubtreeAndLikes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewCommentRepository(db)

	mock.ExpectBegin()
	// walk the reply tree level by level: 9 -> {10, 11} -> {}
	mock.ExpectQuery("SELECT `id` FROM `comment` WHERE parent_id IN").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
	mock.ExpectQuery("SELECT `id` FROM `comment` WHERE parent_id IN").
		WithArgs(10, 11).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// likes on every collected comment go first, then the comments
	mock.ExpectExec("DELETE FROM `comment_likes` WHERE comment_id IN").
		WithArgs(9, 10, 11).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `comment` WHERE id IN").
		WithArgs(9, 10, 11).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.DeleteWithReplies(context.Background(), 9)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithReplies_NotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `comment` WHERE parent_id IN").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM `comment_likes` WHERE comment_id IN").
		WithArgs(404).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `comment` WHERE id IN").
		WithArgs(404).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteWithReplies(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchByPost_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewCommentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE post_id = \\? ORDER BY created_at DESC").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "message"}).
			AddRow(2, 7, 20, "reply").
			AddRow(1, 7, 10, "root"))

	comments, err := repo.FetchByPost(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, int64(2), comments[0].ID)
	assert.Equal(t, int64(1), comments[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
