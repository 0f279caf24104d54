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

func TestPostGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewPostDBRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `post` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostGetByID_StorageErrorIsNotNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewPostDBRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `post` WHERE id = \\?").
		WillReturnError(context.DeadlineExceeded)

	_, err := repo.GetByID(context.Background(), 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
