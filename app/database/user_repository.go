package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type UserRepo struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

var _ UserRepository = (*UserRepo)(nil)

func (r *UserRepo) GetByID(userID string) (*User, error) {
	var user User
	err := r.db.QueryRow(`
		SELECT id, email, slack_channel_id, created_at
		FROM users
		WHERE id = $1
	`, userID).Scan(&user.ID, &user.Email, &user.SlackChannelID, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *UserRepo) Create(email string, slackChannelID *string) (*User, error) {
	var user User
	err := r.db.QueryRow(`
		INSERT INTO users (id, email, slack_channel_id)
		VALUES ($1, $2, $3)
		RETURNING id, email, slack_channel_id, created_at
	`, uuid.NewString(), email, slackChannelID).Scan(&user.ID, &user.Email, &user.SlackChannelID, &user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (r *UserRepo) SetSlackChannel(userID string, slackChannelID *string) error {
	_, err := r.db.Exec(`
		UPDATE users SET slack_channel_id = $2 WHERE id = $1
	`, userID, slackChannelID)

	if err != nil {
		return fmt.Errorf("failed to set slack channel: %w", err)
	}

	return nil
}
