package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"feedback/internal/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("сессия не найдена")
	ErrSessionExpired  = errors.New("сессия истекла")
	ErrSessionCreation = errors.New("ошибка создания сессии")
	ErrSessionDeletion = errors.New("ошибка удаления сессии")
)

// Время жизни сессии по умолчанию - 24 часа
const DefaultSessionDuration = 24 * time.Hour

type SessionService struct {
	db       *Database
	duration time.Duration
}

func NewSessionService(db *Database, duration time.Duration) *SessionService {
	if duration <= 0 {
		duration = DefaultSessionDuration
	}
	return &SessionService{db: db, duration: duration}
}

// Create создает сессию для пользователя внутри переданной транзакции
// или напрямую в базе. Прежние сессии пользователя удаляются, в сессии
// хранится только имя текущего пользователя.
func (ss *SessionService) Create(q Querier, username string) (*models.Session, error) {
	// Удаляем все существующие сессии пользователя
	if err := ss.DeleteUserSessions(q, username); err != nil {
		return nil, fmt.Errorf("ошибка удаления старых сессий: %v", err)
	}

	token := uuid.NewString()
	now := time.Now()
	expires := now.Add(ss.duration)

	query := `INSERT INTO sessions (token, username, expires, created) VALUES (?, ?, ?, ?)`
	if _, err := q.Exec(query, token, username, expires, now); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCreation, err)
	}

	return &models.Session{
		Token:    token,
		Username: username,
		Expires:  expires,
		Created:  now,
	}, nil
}

// Get получает сессию по токену и проверяет срок действия
func (ss *SessionService) Get(token string) (*models.Session, error) {
	var session models.Session

	query := `SELECT token, username, expires, created FROM sessions WHERE token = ?`
	err := ss.db.DBConn.QueryRow(query, token).Scan(
		&session.Token,
		&session.Username,
		&session.Expires,
		&session.Created,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	// Проверяем, не истекла ли сессия
	if time.Now().After(session.Expires) {
		// Попутно удаляем истекшую сессию, ошибка здесь не критична
		_ = ss.Delete(token)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// GetUserBySession получает пользователя по токену сессии
func (ss *SessionService) GetUserBySession(token string) (*models.User, error) {
	session, err := ss.Get(token)
	if err != nil {
		return nil, err
	}

	var user models.User
	query := `SELECT username, password, email, first_name, last_name FROM users WHERE username = ?`
	err = ss.db.DBConn.QueryRow(query, session.Username).Scan(
		&user.Username,
		&user.Password,
		&user.Email,
		&user.FirstName,
		&user.LastName,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			// Попутно удаляем осиротевшую сессию, ошибка здесь не критична
			_ = ss.Delete(token)
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Delete удаляет сессию по токену
func (ss *SessionService) Delete(token string) error {
	query := `DELETE FROM sessions WHERE token = ?`
	result, err := ss.db.DBConn.Exec(query, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionDeletion, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteUserSessions удаляет все сессии пользователя
func (ss *SessionService) DeleteUserSessions(q Querier, username string) error {
	query := `DELETE FROM sessions WHERE username = ?`
	_, err := q.Exec(query, username)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionDeletion, err)
	}
	return nil
}

// CleanupExpiredSessions удаляет истекшие сессии
func (ss *SessionService) CleanupExpiredSessions() error {
	query := `DELETE FROM sessions WHERE expires < ?`
	_, err := ss.db.DBConn.Exec(query, time.Now())
	if err != nil {
		return fmt.Errorf("ошибка очистки истекших сессий: %v", err)
	}
	return nil
}
