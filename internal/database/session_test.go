package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	ss := NewSessionService(db, 0)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")

	session, err := ss.Create(db.DBConn, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "alice", session.Username)

	user, err := ss.GetUserBySession(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	require.NoError(t, ss.Delete(session.Token))

	_, err = ss.Get(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCreateReplacesPreviousSessions(t *testing.T) {
	db := newTestDB(t)
	ss := NewSessionService(db, 0)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")

	first, err := ss.Create(db.DBConn, "alice")
	require.NoError(t, err)
	second, err := ss.Create(db.DBConn, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	_, err = ss.Get(first.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = ss.Get(second.Token)
	assert.NoError(t, err)
}

func TestDeleteUserSessions(t *testing.T) {
	db := newTestDB(t)
	ss := NewSessionService(db, 0)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")
	registerTestUser(t, db, "bob", "secret", "bob@example.com")

	aliceSession, err := ss.Create(db.DBConn, "alice")
	require.NoError(t, err)
	bobSession, err := ss.Create(db.DBConn, "bob")
	require.NoError(t, err)

	require.NoError(t, ss.DeleteUserSessions(db.DBConn, "alice"))

	_, err = ss.Get(aliceSession.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Сессии других пользователей не затронуты
	_, err = ss.Get(bobSession.Token)
	assert.NoError(t, err)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	db := newTestDB(t)
	ss := NewSessionService(db, time.Millisecond)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")

	session, err := ss.Create(db.DBConn, "alice")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ss.Get(session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	// Истекшая сессия удалена при обращении
	_, err = ss.Get(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCleanupExpiredSessions(t *testing.T) {
	db := newTestDB(t)
	ss := NewSessionService(db, time.Millisecond)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")

	session, err := ss.Create(db.DBConn, "alice")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, ss.CleanupExpiredSessions())

	var count int
	err = db.DBConn.QueryRow(`SELECT COUNT(*) FROM sessions WHERE token = ?`, session.Token).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteUserRemovesSessions(t *testing.T) {
	db := newTestDB(t)
	us := NewUserService(db)
	ss := NewSessionService(db, 0)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")

	session, err := ss.Create(db.DBConn, "alice")
	require.NoError(t, err)

	require.NoError(t, us.Delete("alice"))

	_, err = ss.Get(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
