package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackRoundTrip(t *testing.T) {
	db := newTestDB(t)
	fs := NewFeedbackService(db)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")

	created, err := fs.Create("T", "C", "alice")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := fs.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "C", got.Content)
	assert.Equal(t, "alice", got.Username)

	updated, err := fs.Update(created.ID, "T2", "C")
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)

	got, err = fs.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, "C", got.Content)
}

func TestFeedbackIDsAreUnique(t *testing.T) {
	db := newTestDB(t)
	fs := NewFeedbackService(db)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")

	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		feedback, err := fs.Create("Title", "Content", "alice")
		require.NoError(t, err)
		assert.False(t, seen[feedback.ID])
		seen[feedback.ID] = true
	}
}

func TestGetUserFeedbacks(t *testing.T) {
	db := newTestDB(t)
	fs := NewFeedbackService(db)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")
	registerTestUser(t, db, "bob", "secret", "bob@example.com")

	_, err := fs.Create("Mine", "Content", "alice")
	require.NoError(t, err)
	_, err = fs.Create("Theirs", "Content", "bob")
	require.NoError(t, err)

	feedbacks, err := fs.GetUserFeedbacks("alice")
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, "Mine", feedbacks[0].Title)
}

func TestFeedbackNotFound(t *testing.T) {
	db := newTestDB(t)
	fs := NewFeedbackService(db)

	_, err := fs.Get(42)
	assert.ErrorIs(t, err, ErrFeedbackNotFound)

	_, err = fs.Update(42, "T", "C")
	assert.ErrorIs(t, err, ErrFeedbackNotFound)

	assert.ErrorIs(t, fs.Delete(42), ErrFeedbackNotFound)
}

func TestFeedbackValidation(t *testing.T) {
	db := newTestDB(t)
	fs := NewFeedbackService(db)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")

	_, err := fs.Create("", "Content", "alice")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = fs.Create(strings.Repeat("x", 101), "Content", "alice")
	assert.ErrorIs(t, err, ErrLongTitle)

	_, err = fs.Create("Title", "", "alice")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestDeleteFeedback(t *testing.T) {
	db := newTestDB(t)
	fs := NewFeedbackService(db)

	registerTestUser(t, db, "alice", "secret", "alice@example.com")

	feedback, err := fs.Create("Title", "Content", "alice")
	require.NoError(t, err)

	require.NoError(t, fs.Delete(feedback.ID))

	_, err = fs.Get(feedback.ID)
	assert.ErrorIs(t, err, ErrFeedbackNotFound)
}
