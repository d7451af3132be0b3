package web

import (
	"net/http"

	"feedback/internal/models"

	"github.com/go-chi/chi/v5"
)

// requireSelf проверяет, что запрошенный профиль принадлежит текущему
// пользователю; чужой профиль перенаправляет на собственный.
func (app *app) requireSelf(w http.ResponseWriter, r *http.Request, user *models.User) bool {
	username := chi.URLParam(r, "username")
	if username == user.Username {
		return true
	}

	app.setFlash(w, "You don't have permission to do that!")
	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
	return false
}

// showUser показывает профиль пользователя и его отзывы
func (app *app) showUser(w http.ResponseWriter, r *http.Request) {
	// Сессия могла исчезнуть между middleware и повторным запросом
	user := app.getCurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if !app.requireSelf(w, r, user) {
		return
	}

	feedbacks, err := app.FeedbackService.GetUserFeedbacks(user.Username)
	if err != nil {
		app.errorLog.Printf("Failed to get feedbacks for %q: %v", user.Username, err)
		feedbacks = []*models.Feedback{}
	}

	data := &HTMLData{
		Title:       user.Username,
		CurrentUser: user,
		User:        user,
		Feedbacks:   feedbacks,
	}

	app.RenderHTML(w, r, "user.page.html", data)
}

// deleteUser удаляет учетную запись вместе с отзывами
func (app *app) deleteUser(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if !app.requireSelf(w, r, user) {
		return
	}

	// Сначала каскадное удаление, затем сброс сессии
	if err := app.UserService.Delete(user.Username); err != nil {
		app.errorLog.Printf("Failed to delete user %q: %v", user.Username, err)
		app.ServerError(w, err)
		return
	}

	app.clearSessionCookie(w)

	app.infoLog.Printf("User deleted: %q", user.Username)

	app.setFlash(w, "Your account has been deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
