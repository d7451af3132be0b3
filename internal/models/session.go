package models

import "time"

type Session struct {
	Token    string    // Уникальный токен сессии
	Username string    // Владелец сессии
	Expires  time.Time // Время истечения
	Created  time.Time // Время создания
}
