package database

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"feedback/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameExists     = errors.New("пользователь с таким именем уже существует")
	ErrEmailExists        = errors.New("пользователь с таким email уже существует")
	ErrEmptyEmail         = errors.New("email не может быть пустым")
	ErrLongEmail          = errors.New("email не должен превышать 50 символов")
	ErrInvalidUsername    = errors.New("имя пользователя может содержать только буквы, цифры, подчеркивание и дефис")
	ErrEmptyUsername      = errors.New("имя пользователя не может быть пустым")
	ErrLongUsername       = errors.New("имя пользователя не должно превышать 20 символов")
	ErrEmptyName          = errors.New("имя и фамилия не могут быть пустыми")
	ErrLongName           = errors.New("имя и фамилия не должны превышать 30 символов")
	ErrEmptyPassword      = errors.New("пароль не может быть пустым")
	ErrLongPassword       = errors.New("пароль не должен превышать 128 символов")
	ErrPasswordHashFailed = errors.New("ошибка хеширования пароля")
	ErrUserCreateFailed   = errors.New("ошибка создания пользователя")
	ErrUserDeleteFailed   = errors.New("ошибка удаления пользователя")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrIncorrectPassword  = errors.New("неверный пароль")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// HashPassword хеширует пароль bcrypt со случайной солью.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// CheckPassword проверяет пароль против сохраненного хеша.
func CheckPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

type UserService struct {
	db *Database
}

func NewUserService(db *Database) *UserService {
	return &UserService{db: db}
}

// Register создает пользователя внутри переданной транзакции.
// Коммит остается за вызывающим: обработчик подтверждает транзакцию
// и только после этого устанавливает сессию.
func (us *UserService) Register(q Querier, username, password, email, firstName, lastName string) (*models.User, error) {
	// Валидация входных данных
	if err := us.validateUserData(username, email, password, firstName, lastName); err != nil {
		return nil, err
	}

	// Проверяем уникальность username и email
	if err := us.checkUserUniqueness(q, username, email); err != nil {
		return nil, err
	}

	// Хешируем пароль
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPasswordHashFailed, err)
	}

	query := `INSERT INTO users (username, password, email, first_name, last_name)
		  VALUES (?, ?, ?, ?, ?)`

	if _, err := q.Exec(query, username, hashedPassword, email, firstName, lastName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserCreateFailed, err)
	}

	return &models.User{
		Username:  username,
		Password:  hashedPassword,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// Authenticate проверяет пару username/password.
func (us *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := us.Get(username)
	if err != nil {
		return nil, err
	}

	if !CheckPassword(user.Password, password) {
		return nil, ErrIncorrectPassword
	}

	return user, nil
}

func (us *UserService) Get(username string) (*models.User, error) {
	var user models.User

	query := `SELECT username, password, email, first_name, last_name FROM users WHERE username = ?`
	err := us.db.DBConn.QueryRow(query, username).Scan(
		&user.Username,
		&user.Password,
		&user.Email,
		&user.FirstName,
		&user.LastName,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Delete удаляет пользователя; отзывы и сессии уходят каскадом
// по внешним ключам.
func (us *UserService) Delete(username string) error {
	query := `DELETE FROM users WHERE username = ?`
	result, err := us.db.DBConn.Exec(query, username)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUserDeleteFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// checkUserUniqueness проверяет уникальность username и email
func (us *UserService) checkUserUniqueness(q Querier, username, email string) error {
	// Проверяем username
	query := `SELECT 1 FROM users WHERE username = ?`
	var exists int
	err := q.QueryRow(query, username).Scan(&exists)
	if err != sql.ErrNoRows {
		if err == nil {
			return ErrUsernameExists
		}
		return fmt.Errorf("ошибка проверки уникальности username: %v", err)
	}

	// Проверяем email
	query = `SELECT 1 FROM users WHERE email = ?`
	err = q.QueryRow(query, email).Scan(&exists)
	if err != sql.ErrNoRows {
		if err == nil {
			return ErrEmailExists
		}
		return fmt.Errorf("ошибка проверки уникальности email: %v", err)
	}

	return nil
}

// validateUserData валидирует все данные пользователя
func (us *UserService) validateUserData(username, email, password, firstName, lastName string) error {
	if err := us.validateUsername(username); err != nil {
		return err
	}
	if err := us.validateEmail(email); err != nil {
		return err
	}
	if err := us.validatePassword(password); err != nil {
		return err
	}
	return us.validateName(firstName, lastName)
}

func (us *UserService) validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if len(email) == 0 {
		return ErrEmptyEmail
	}
	if len(email) > 50 {
		return ErrLongEmail
	}

	return nil
}

func (us *UserService) validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) == 0 {
		return ErrEmptyUsername
	}
	if len(username) > 20 {
		return ErrLongUsername
	}

	// Допустимы только буквы, цифры, подчеркивание и дефис
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}

	return nil
}

func (us *UserService) validatePassword(password string) error {
	if len(password) == 0 {
		return ErrEmptyPassword
	}
	if len(password) > 128 {
		return ErrLongPassword
	}
	return nil
}

func (us *UserService) validateName(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return ErrEmptyName
	}
	if len(firstName) > 30 || len(lastName) > 30 {
		return ErrLongName
	}
	return nil
}
