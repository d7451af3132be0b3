package web

import (
	"log"
	"net/http"
	"os"
	"time"

	"feedback/internal/config"
	"feedback/internal/database"
	"feedback/internal/models"

	"github.com/go-playground/validator/v10"
)

// Хранилища объявлены интерфейсами, чтобы в тестах обработчиков
// подставлять фейковые реализации.
type userStore interface {
	Register(q database.Querier, username, password, email, firstName, lastName string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	Get(username string) (*models.User, error)
	Delete(username string) error
}

type feedbackStore interface {
	Create(title, content, username string) (*models.Feedback, error)
	Get(id int) (*models.Feedback, error)
	GetUserFeedbacks(username string) ([]*models.Feedback, error)
	Update(id int, title, content string) (*models.Feedback, error)
	Delete(id int) error
}

type sessionStore interface {
	Create(q database.Querier, username string) (*models.Session, error)
	GetUserBySession(token string) (*models.User, error)
	Delete(token string) error
	CleanupExpiredSessions() error
}

type app struct {
	infoLog         *log.Logger
	errorLog        *log.Logger
	HTMLDir         string
	StaticDir       string
	Database        *database.Database
	UserService     userStore
	SessionService  sessionStore
	FeedbackService feedbackStore
	validate        *validator.Validate
}

func RunApp() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg := config.LoadConfig()

	db, err := database.NewDatabase(cfg.DatabaseDSN)
	if err != nil {
		errorLog.Fatal("Failed to open SQLite DB:", err)
	}
	defer db.Close()

	infoLog.Println("SQLite DB connected:", cfg.DatabaseDSN)

	app := &app{
		errorLog:        errorLog,
		infoLog:         infoLog,
		HTMLDir:         cfg.HTMLDir,
		StaticDir:       cfg.StaticDir,
		Database:        db,
		UserService:     database.NewUserService(db),
		SessionService:  database.NewSessionService(db, cfg.SessionDuration()),
		FeedbackService: database.NewFeedbackService(db),
		validate:        validator.New(),
	}

	if err := app.SessionService.CleanupExpiredSessions(); err != nil {
		app.infoLog.Printf("Warning: failed to cleanup expired sessions: %v", err)
	}

	srv := &http.Server{
		Addr:     cfg.Addr,
		ErrorLog: app.errorLog,
		Handler:  app.routes(),

		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on http://localhost%s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}
