package web

import (
	"bytes"
	"net/http"
	"path/filepath"
	"text/template"
	"time"
	"unicode"

	"feedback/internal/models"
)

type HTMLData struct {
	Title       string
	Path        string
	Flash       string
	FormError   string
	FieldErrors map[string]string // сообщения валидации по полям формы
	FormData    map[string]string // для хранения введённых значений в форму
	CurrentUser *models.User
	User        *models.User
	Feedback    *models.Feedback
	Feedbacks   []*models.Feedback
}

var functions = template.FuncMap{
	"cap": func(str string) string {
		if str == "" {
			return ""
		}
		runes := []rune(str)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
}

func (app *app) RenderHTML(w http.ResponseWriter, r *http.Request, pageFile string, data *HTMLData) {
	if data == nil {
		data = &HTMLData{}
	}

	data.Path = r.URL.Path

	// Добавляем текущего пользователя, если он не установлен
	if data.CurrentUser == nil {
		data.CurrentUser = app.getCurrentUser(r)
	}

	// Забираем одноразовое сообщение для этой страницы
	if data.Flash == "" {
		data.Flash = app.popFlash(w, r)
	}

	layoutFile := "base.layout.html"

	files := []string{
		filepath.Join(app.HTMLDir, layoutFile),
		filepath.Join(app.HTMLDir, pageFile),
	}

	ts, err := template.New("").Funcs(functions).ParseFiles(files...)
	if err != nil {
		app.ServerError(w, err)
		return
	}

	ts, err = ts.ParseGlob(filepath.Join(app.HTMLDir, "*.partial.html"))
	if err != nil {
		app.ServerError(w, err)
		return
	}

	buf := new(bytes.Buffer)

	// Рендерим шаблон во временный буфер, чтобы ошибка рендера
	// не оставила клиенту полстраницы
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		app.ServerError(w, err)
		return
	}

	buf.WriteTo(w)
}
