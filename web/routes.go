package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *app) routes() http.Handler {
	r := chi.NewRouter()

	fileServer := http.FileServer(http.Dir(app.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	r.Get("/", app.home)

	// Маршруты только для гостей (неавторизованных)
	r.Get("/register", app.requireGuest(app.register))
	r.Post("/register", app.requireGuest(app.register))
	r.Get("/login", app.requireGuest(app.login))
	r.Post("/login", app.requireGuest(app.login))

	r.Get("/logout", app.logout)

	// Маршруты только для авторизованных пользователей
	r.Get("/users/{username}", app.requireAuth(app.showUser))
	r.Get("/users/{username}/feedback/add", app.requireAuth(app.addFeedback))
	r.Post("/users/{username}/feedback/add", app.requireAuth(app.addFeedback))
	r.Post("/users/{username}/delete", app.requireAuth(app.deleteUser))

	r.Get("/feedback/{id}/update", app.requireAuth(app.updateFeedback))
	r.Post("/feedback/{id}/update", app.requireAuth(app.updateFeedback))
	r.Post("/feedback/{id}/delete", app.requireAuth(app.deleteFeedback))

	return r
}

// home перенаправляет на страницу входа
func (app *app) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
