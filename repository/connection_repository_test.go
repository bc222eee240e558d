package repository

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestConnectionRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConnectionRepositoryWithDB(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `connections` WHERE id = ? ORDER BY `connections`.`id` LIMIT ?")).
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "db_type", "host", "port", "username", "password", "database_name", "status"}).
			AddRow(5, "shop", "mysql", "10.0.0.5", 3306, "app", "secret", "shop", "enabled"))

	profile, err := repo.GetByID(nil, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), profile.ID)
	assert.Equal(t, "mysql", profile.DBType)
	assert.Equal(t, "shop", profile.Database)
	assert.Equal(t, "secret", profile.Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConnectionRepositoryWithDB(db)

	mock.ExpectQuery("SELECT \\* FROM `connections`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(nil, 999999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestConnectionRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConnectionRepositoryWithDB(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `connections` SET `status`=? WHERE id = ?")).
		WithArgs("enabled", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateStatus(nil, 5, "enabled"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_UpdateStatusUnchanged(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConnectionRepositoryWithDB(db)

	// MySQL counts changed rows only: re-writing the current status affects none.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `connections` SET `status`=? WHERE id = ?")).
		WithArgs("enabled", 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateStatus(nil, 5, "enabled"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_UpdateStatusError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConnectionRepositoryWithDB(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `connections`").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.UpdateStatus(nil, 42, "disabled")
	assert.EqualError(t, err, "connection reset")
}
