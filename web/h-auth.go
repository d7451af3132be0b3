package web

import (
	"errors"
	"net/http"

	"feedback/internal/database"
)

func (app *app) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Register",
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	form := registerForm{
		Username:  r.FormValue("username"),
		Password:  r.FormValue("password"),
		Email:     r.FormValue("email"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
	}

	formData := map[string]string{
		"username":   form.Username,
		"email":      form.Email,
		"first_name": form.FirstName,
		"last_name":  form.LastName,
	}

	if fieldErrors := app.validateForm(form); fieldErrors != nil {
		data := &HTMLData{
			Title:       "Register",
			FieldErrors: fieldErrors,
			FormData:    formData,
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	app.infoLog.Printf("Attempting to register user: username=%q email=%q", form.Username, form.Email)

	// Пользователь и его сессия создаются в одной транзакции:
	// сессия становится видимой только вместе с учетной записью
	tx, err := app.Database.Begin()
	if err != nil {
		app.ServerError(w, err)
		return
	}
	defer tx.Rollback()

	user, err := app.UserService.Register(tx, form.Username, form.Password, form.Email, form.FirstName, form.LastName)
	if err != nil {
		formError := err.Error()
		switch {
		case errors.Is(err, database.ErrUsernameExists):
			formError = "That username is already taken!"
		case errors.Is(err, database.ErrEmailExists):
			formError = "There is already an account with that email address!"
		}

		data := &HTMLData{
			Title:     "Register",
			FormError: formError,
			FormData:  formData,
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	session, err := app.SessionService.Create(tx, user.Username)
	if err != nil {
		app.errorLog.Printf("Failed to create session for user %q: %v", user.Username, err)
		app.ServerError(w, err)
		return
	}

	if err := tx.Commit(); err != nil {
		app.ServerError(w, err)
		return
	}

	// Cookie устанавливаем только после успешного коммита
	app.setSessionCookie(w, session.Token)

	app.infoLog.Printf("Successfully registered user: %q", user.Username)

	app.setFlash(w, "Welcome! Your account has been created.")
	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

func (app *app) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Login",
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	form := loginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	formData := map[string]string{
		"username": form.Username,
	}

	if fieldErrors := app.validateForm(form); fieldErrors != nil {
		data := &HTMLData{
			Title:       "Login",
			FieldErrors: fieldErrors,
			FormData:    formData,
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	app.infoLog.Printf("Attempting to login user: username=%q", form.Username)

	user, err := app.UserService.Authenticate(form.Username, form.Password)
	if err != nil {
		// Не раскрываем, что именно не подошло
		if errors.Is(err, database.ErrUserNotFound) || errors.Is(err, database.ErrIncorrectPassword) {
			data := &HTMLData{
				Title:     "Login",
				FormError: "Invalid username or password.",
				FormData:  formData,
			}
			app.RenderHTML(w, r, "login.page.html", data)
			return
		}
		app.ServerError(w, err)
		return
	}

	session, err := app.SessionService.Create(app.Database.DBConn, user.Username)
	if err != nil {
		app.errorLog.Printf("Failed to create session for user %q: %v", user.Username, err)
		app.ServerError(w, err)
		return
	}

	app.setSessionCookie(w, session.Token)

	app.infoLog.Printf("Login successful: username=%q", user.Username)

	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

func (app *app) logout(w http.ResponseWriter, r *http.Request) {
	token := app.getSessionToken(r)
	if token != "" {
		if err := app.SessionService.Delete(token); err != nil {
			app.errorLog.Printf("Failed to delete session: %v", err)
		}
	}

	app.clearSessionCookie(w)
	app.setFlash(w, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
