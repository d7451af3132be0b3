package web

import (
	"errors"
	"net/http"
	"strconv"

	"feedback/internal/database"
	"feedback/internal/models"

	"github.com/go-chi/chi/v5"
)

// addFeedback создает новый отзыв владельца профиля
func (app *app) addFeedback(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if !app.requireSelf(w, r, user) {
		return
	}

	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title:       "Add Feedback",
			CurrentUser: user,
		}
		app.RenderHTML(w, r, "feedback-form.page.html", data)
		return
	}

	form := feedbackForm{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if fieldErrors := app.validateForm(form); fieldErrors != nil {
		data := &HTMLData{
			Title:       "Add Feedback",
			CurrentUser: user,
			FieldErrors: fieldErrors,
			FormData: map[string]string{
				"title":   form.Title,
				"content": form.Content,
			},
		}
		app.RenderHTML(w, r, "feedback-form.page.html", data)
		return
	}

	feedback, err := app.FeedbackService.Create(form.Title, form.Content, user.Username)
	if err != nil {
		data := &HTMLData{
			Title:       "Add Feedback",
			CurrentUser: user,
			FormError:   err.Error(),
			FormData: map[string]string{
				"title":   form.Title,
				"content": form.Content,
			},
		}
		app.RenderHTML(w, r, "feedback-form.page.html", data)
		return
	}

	app.infoLog.Printf("Feedback created: ID=%d, Title=%q, Owner=%q",
		feedback.ID, feedback.Title, user.Username)

	app.setFlash(w, "Feedback added!")
	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

// getOwnFeedback разбирает {id} и проверяет, что отзыв принадлежит
// текущему пользователю. Чужой или несуществующий отзыв уводит на
// собственный профиль с уведомлением.
func (app *app) getOwnFeedback(w http.ResponseWriter, r *http.Request, user *models.User) *models.Feedback {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		app.NotFound(w)
		return nil
	}

	feedback, err := app.FeedbackService.Get(id)
	if err != nil {
		if errors.Is(err, database.ErrFeedbackNotFound) {
			app.setFlash(w, "That feedback doesn't exist.")
			http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
			return nil
		}
		app.ServerError(w, err)
		return nil
	}

	// Владение отзывом определяется через ссылку на пользователя
	if feedback.Username != user.Username {
		app.setFlash(w, "You don't have permission to do that!")
		http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
		return nil
	}

	return feedback
}

// updateFeedback редактирует отзыв (только владелец)
func (app *app) updateFeedback(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	feedback := app.getOwnFeedback(w, r, user)
	if feedback == nil {
		return
	}

	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title:       "Edit Feedback",
			CurrentUser: user,
			Feedback:    feedback,
			FormData: map[string]string{
				"title":   feedback.Title,
				"content": feedback.Content,
			},
		}
		app.RenderHTML(w, r, "feedback-form.page.html", data)
		return
	}

	form := feedbackForm{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if fieldErrors := app.validateForm(form); fieldErrors != nil {
		data := &HTMLData{
			Title:       "Edit Feedback",
			CurrentUser: user,
			Feedback:    feedback,
			FieldErrors: fieldErrors,
			FormData: map[string]string{
				"title":   form.Title,
				"content": form.Content,
			},
		}
		app.RenderHTML(w, r, "feedback-form.page.html", data)
		return
	}

	if _, err := app.FeedbackService.Update(feedback.ID, form.Title, form.Content); err != nil {
		app.errorLog.Printf("Failed to update feedback %d: %v", feedback.ID, err)
		app.ServerError(w, err)
		return
	}

	app.infoLog.Printf("Feedback updated: ID=%d, Title=%q, Owner=%q",
		feedback.ID, form.Title, user.Username)

	app.setFlash(w, "Feedback updated!")
	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

// deleteFeedback удаляет отзыв (только владелец)
func (app *app) deleteFeedback(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	feedback := app.getOwnFeedback(w, r, user)
	if feedback == nil {
		return
	}

	if err := app.FeedbackService.Delete(feedback.ID); err != nil {
		app.errorLog.Printf("Failed to delete feedback %d: %v", feedback.ID, err)
		app.ServerError(w, err)
		return
	}

	app.infoLog.Printf("Feedback deleted: ID=%d, Owner=%q", feedback.ID, user.Username)

	app.setFlash(w, "Feedback deleted!")
	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}
