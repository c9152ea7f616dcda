package sql

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepoWithMock(t *testing.T) (*GormRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open error: %v", err)
	}
	return NewGormRepository(gormDB), mock
}

func TestGetUserByEmailFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM .users. WHERE LOWER\(email\) = .*`).
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "email", "password_hash", "role_id"}).
			AddRow("u-1", now, now, "Ada", "a@b.com", "hash", "r-1"))
	mock.ExpectQuery(`SELECT .* FROM .roles. WHERE .roles...id. .*`).
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name"}).
			AddRow("r-1", now, now, entity.RoleAdmin))

	user, err := repo.GetUserByEmail(context.Background(), "A@B.com")
	require.NoError(t, err)
	require.Equal(t, "u-1", user.ID)
	require.Equal(t, "a@b.com", user.Email)
	require.NotNil(t, user.Role)
	require.Equal(t, entity.RoleAdmin, user.Role.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM .users. WHERE LOWER\(email\) = .*`).
		WithArgs("ghost@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetUserByEmail(context.Background(), "ghost@b.com")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailRejectsBlank(t *testing.T) {
	repo, _ := newRepoWithMock(t)

	_, err := repo.GetUserByEmail(context.Background(), "   ")
	require.Error(t, err)
}

func TestDeleteUserMissingRow(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .users. WHERE id = .*`).
		WithArgs("u-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteUser(context.Background(), "u-missing")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserSuccess(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .users. WHERE id = .*`).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteUser(context.Background(), "u-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserEmailInUse(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .users. WHERE LOWER\(email\) = .*`).
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	inUse, err := repo.UserEmailInUse(context.Background(), "a@b.com", "")
	require.NoError(t, err)
	require.True(t, inUse)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserEmailInUseExcludesSelf(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .users. WHERE LOWER\(email\) = .* AND id <> .*`).
		WithArgs("a@b.com", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	inUse, err := repo.UserEmailInUse(context.Background(), "a@b.com", "u-1")
	require.NoError(t, err)
	require.False(t, inUse)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUsersWithRole(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .users. WHERE role_id = .*`).
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUsersWithRole(context.Background(), "r-1")
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
