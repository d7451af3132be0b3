package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Error mocking DB")

	db := &Database{DBConn: conn}
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet(), "Expectations were not met")
		conn.Close()
	})

	return db, mock
}

func TestGetQueryError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	us := NewUserService(db)

	dbErr := errors.New("db error")
	mock.ExpectQuery(`SELECT username, password, email, first_name, last_name FROM users`).
		WithArgs("alice").
		WillReturnError(dbErr)

	_, err := us.Get("alice")
	assert.ErrorIs(t, err, dbErr)
}

func TestDeleteExecError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	us := NewUserService(db)

	mock.ExpectExec(`DELETE FROM users WHERE username = \?`).
		WithArgs("alice").
		WillReturnError(errors.New("db error"))

	err := us.Delete("alice")
	assert.ErrorIs(t, err, ErrUserDeleteFailed)
}

func TestUniquenessCheckError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	us := NewUserService(db)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \?`).
		WithArgs("alice").
		WillReturnError(errors.New("db error"))

	_, err := us.Register(db.DBConn, "alice", "secret", "alice@example.com", "Alice", "Smith")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsernameExists)
}
