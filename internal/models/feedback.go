package models

import "time"

type Feedback struct {
	ID       int       // Уникальный идентификатор
	Title    string    // Заголовок отзыва
	Content  string    // Содержимое отзыва
	Username string    // Владелец (внешний ключ на users.username)
	Created  time.Time // Дата создания
	Updated  time.Time // Дата изменения
}
