package web

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterForm(t *testing.T) {
	app := &app{validate: validator.New()}

	fieldErrors := app.validateForm(registerForm{})
	assert.Equal(t, "You must provide a username!", fieldErrors["Username"])
	assert.Equal(t, "You must provide a password!", fieldErrors["Password"])
	assert.Equal(t, "You must provide an email address!", fieldErrors["Email"])
	assert.Equal(t, "You must provide your first name!", fieldErrors["FirstName"])
	assert.Equal(t, "You must provide a last name!", fieldErrors["LastName"])

	fieldErrors = app.validateForm(registerForm{
		Username:  strings.Repeat("x", 21),
		Password:  "secret",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	assert.Equal(t, "The username can't be longer than 20 characters!", fieldErrors["Username"])
	assert.Len(t, fieldErrors, 1)

	fieldErrors = app.validateForm(registerForm{
		Username:  "alice",
		Password:  "secret",
		Email:     "not-an-email",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	assert.Equal(t, "That doesn't look like an email address!", fieldErrors["Email"])

	assert.Nil(t, app.validateForm(registerForm{
		Username:  "alice",
		Password:  "secret",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	}))
}

func TestValidateFeedbackForm(t *testing.T) {
	app := &app{validate: validator.New()}

	fieldErrors := app.validateForm(feedbackForm{})
	assert.Equal(t, "You must provide a title!", fieldErrors["Title"])
	assert.Equal(t, "You must provide some content!", fieldErrors["Content"])

	fieldErrors = app.validateForm(feedbackForm{
		Title:   strings.Repeat("x", 101),
		Content: "Hello",
	})
	assert.Equal(t, "The title can't be longer than 100 characters!", fieldErrors["Title"])

	assert.Nil(t, app.validateForm(feedbackForm{Title: "Hi", Content: "Hello"}))
}
