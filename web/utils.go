package web

import (
	"encoding/base64"
	"net/http"

	"feedback/internal/models"
)

const (
	SessionCookieName = "session_token"
	FlashCookieName   = "flash"
)

// setSessionCookie устанавливает cookie с токеном сессии
func (app *app) setSessionCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   24 * 60 * 60, // 24 часа в секундах
		HttpOnly: true,         // Защита от XSS
		Secure:   false,        // Поставить true для HTTPS
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

// clearSessionCookie удаляет cookie сессии
func (app *app) clearSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)
}

// getSessionToken получает токен сессии из cookie
func (app *app) getSessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setFlash сохраняет одноразовое сообщение для следующей страницы.
// Значение кодируется base64, так как cookie не переносит пробелы.
func (app *app) setFlash(w http.ResponseWriter, message string) {
	cookie := &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

// popFlash читает и сразу удаляет одноразовое сообщение
func (app *app) popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	message, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(message)
}

// getCurrentUser получает текущего пользователя по сессии
func (app *app) getCurrentUser(r *http.Request) *models.User {
	token := app.getSessionToken(r)
	if token == "" {
		return nil
	}

	user, err := app.SessionService.GetUserBySession(token)
	if err != nil {
		return nil
	}

	return user
}

// isAuthenticated проверяет, авторизован ли пользователь
func (app *app) isAuthenticated(r *http.Request) bool {
	return app.getCurrentUser(r) != nil
}
