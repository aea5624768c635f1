package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"webcabinet/internal/models"
)

// SessionRepository — серверное зеркало выданных платформой сессий.
// Cookie остаётся источником истины для гарда маршрутов, зеркало — для
// подстановки сессионных заголовков в исходящие вызовы API.
type SessionRepository interface {
	Save(viewID string, creds *models.Credentials) error
	Get(viewID string) (*models.Credentials, error)
	Delete(viewID string) error
}

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{DB: db}
}

// Save — одна строка на браузерную вкладку (view), повторный логин перезаписывает.
func (r *sessionRepository) Save(viewID string, creds *models.Credentials) error {
	const q = `
		INSERT INTO web_sessions (view_id, session_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (view_id)
		DO UPDATE SET session_id = EXCLUDED.session_id,
		              user_id    = EXCLUDED.user_id,
		              created_at = EXCLUDED.created_at
	`
	if _, err := r.DB.Exec(q, viewID, creds.SessionID, creds.UserID, time.Now()); err != nil {
		return fmt.Errorf("web_session save: %w", err)
	}
	return nil
}

func (r *sessionRepository) Get(viewID string) (*models.Credentials, error) {
	const q = `
		SELECT session_id, user_id
		FROM web_sessions
		WHERE view_id = $1
	`
	row := r.DB.QueryRow(q, viewID)
	var c models.Credentials
	if err := row.Scan(&c.SessionID, &c.UserID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("web_session get: %w", err)
	}
	return &c, nil
}

func (r *sessionRepository) Delete(viewID string) error {
	const q = `DELETE FROM web_sessions WHERE view_id = $1`
	if _, err := r.DB.Exec(q, viewID); err != nil {
		return fmt.Errorf("web_session delete: %w", err)
	}
	return nil
}
