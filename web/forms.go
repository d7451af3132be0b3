package web

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Формы повторяют поля обработчиков регистрации, входа и отзыва.
type registerForm struct {
	Username  string `validate:"required,max=20"`
	Password  string `validate:"required,max=128"`
	Email     string `validate:"required,email,max=50"`
	FirstName string `validate:"required,max=30"`
	LastName  string `validate:"required,max=30"`
}

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type feedbackForm struct {
	Title   string `validate:"required,max=100"`
	Content string `validate:"required"`
}

// Сообщения по полю и правилу; для прочих комбинаций берется generic.
var formMessages = map[string]string{
	"Username|required":  "You must provide a username!",
	"Username|max":       "The username can't be longer than 20 characters!",
	"Password|required":  "You must provide a password!",
	"Password|max":       "The password can't be longer than 128 characters!",
	"Email|required":     "You must provide an email address!",
	"Email|email":        "That doesn't look like an email address!",
	"Email|max":          "The email address can't be longer than 50 characters!",
	"FirstName|required": "You must provide your first name!",
	"FirstName|max":      "Your first name can't be more than 30 characters!",
	"LastName|required":  "You must provide a last name!",
	"LastName|max":       "Your last name can't be more than 30 characters!",
	"Title|required":     "You must provide a title!",
	"Title|max":          "The title can't be longer than 100 characters!",
	"Content|required":   "You must provide some content!",
}

// validateForm прогоняет форму через валидатор и возвращает сообщения
// по полям; nil означает, что форма корректна.
func (app *app) validateForm(form any) map[string]string {
	err := app.validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"": err.Error()}
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		message, ok := formMessages[fe.Field()+"|"+fe.Tag()]
		if !ok {
			message = "This value is not valid!"
		}
		fieldErrors[fe.Field()] = message
	}

	return fieldErrors
}
