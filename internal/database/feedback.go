package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"feedback/internal/models"
)

var (
	ErrFeedbackNotFound     = errors.New("отзыв не найден")
	ErrEmptyTitle           = errors.New("заголовок не может быть пустым")
	ErrLongTitle            = errors.New("заголовок не должен превышать 100 символов")
	ErrEmptyContent         = errors.New("содержимое отзыва не может быть пустым")
	ErrFeedbackCreateFailed = errors.New("ошибка создания отзыва")
	ErrFeedbackUpdateFailed = errors.New("ошибка обновления отзыва")
	ErrFeedbackDeleteFailed = errors.New("ошибка удаления отзыва")
)

type FeedbackService struct {
	db *Database
}

func NewFeedbackService(db *Database) *FeedbackService {
	return &FeedbackService{db: db}
}

// Create создает новый отзыв от имени владельца
func (fs *FeedbackService) Create(title, content, username string) (*models.Feedback, error) {
	if err := fs.validateFeedbackData(title, content); err != nil {
		return nil, err
	}

	query := `INSERT INTO feedbacks (title, content, username, created, updated)
			  VALUES (?, ?, ?, ?, ?) RETURNING id`

	var feedback models.Feedback
	now := time.Now()

	err := fs.db.DBConn.QueryRow(query, title, content, username, now, now).Scan(&feedback.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedbackCreateFailed, err)
	}

	feedback.Title = title
	feedback.Content = content
	feedback.Username = username
	feedback.Created = now
	feedback.Updated = now

	return &feedback, nil
}

// Get получает отзыв по ID
func (fs *FeedbackService) Get(id int) (*models.Feedback, error) {
	query := `SELECT id, title, content, username, created, updated
			  FROM feedbacks
			  WHERE id = ?`

	var feedback models.Feedback
	err := fs.db.DBConn.QueryRow(query, id).Scan(
		&feedback.ID, &feedback.Title, &feedback.Content,
		&feedback.Username, &feedback.Created, &feedback.Updated)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	return &feedback, nil
}

// GetUserFeedbacks получает отзывы конкретного пользователя
func (fs *FeedbackService) GetUserFeedbacks(username string) ([]*models.Feedback, error) {
	query := `SELECT id, title, content, username, created, updated
			  FROM feedbacks
			  WHERE username = ?
			  ORDER BY created DESC`

	rows, err := fs.db.DBConn.Query(query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*models.Feedback
	for rows.Next() {
		var feedback models.Feedback
		err := rows.Scan(&feedback.ID, &feedback.Title, &feedback.Content,
			&feedback.Username, &feedback.Created, &feedback.Updated)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, &feedback)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// Update обновляет заголовок и содержимое отзыва
func (fs *FeedbackService) Update(id int, title, content string) (*models.Feedback, error) {
	if err := fs.validateFeedbackData(title, content); err != nil {
		return nil, err
	}

	query := `UPDATE feedbacks SET title = ?, content = ?, updated = ? WHERE id = ?`
	result, err := fs.db.DBConn.Exec(query, title, content, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedbackUpdateFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rowsAffected == 0 {
		return nil, ErrFeedbackNotFound
	}

	return fs.Get(id)
}

// Delete удаляет отзыв по ID
func (fs *FeedbackService) Delete(id int) error {
	query := `DELETE FROM feedbacks WHERE id = ?`
	result, err := fs.db.DBConn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFeedbackDeleteFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

// validateFeedbackData валидирует данные отзыва
func (fs *FeedbackService) validateFeedbackData(title, content string) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if len(title) == 0 {
		return ErrEmptyTitle
	}
	if len(title) > 100 {
		return ErrLongTitle
	}
	if len(content) == 0 {
		return ErrEmptyContent
	}

	return nil
}
