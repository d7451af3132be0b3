package models

type User struct {
	Username  string // Имя пользователя (первичный ключ)
	Password  []byte // Хешированный пароль
	Email     string // Email (уникален)
	FirstName string // Имя
	LastName  string // Фамилия
}

// FullName возвращает имя и фамилию для страницы профиля.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
