package web

import (
	"net/http"
)

// requireAuth middleware - требует авторизации
func (app *app) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Запрещаем кэширование защищенных страниц
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if !app.isAuthenticated(r) {
			app.setFlash(w, "Please login first!")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// requireGuest middleware - авторизованных отправляет на их профиль
func (app *app) requireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Запрещаем кэширование этих страниц
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if user := app.getCurrentUser(r); user != nil {
			http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
