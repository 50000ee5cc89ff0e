package database

import (
	"fmt"
)

type SubscriptionRepo struct {
	db *DB
}

func NewSubscriptionRepository(db *DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

var _ SubscriptionRepository = (*SubscriptionRepo)(nil)

func (r *SubscriptionRepo) Subscribe(userID, channelID string) error {
	_, err := r.db.Exec(`
		INSERT INTO subscriptions (user_id, channel_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, channel_id) DO NOTHING
	`, userID, channelID)

	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	return nil
}

func (r *SubscriptionRepo) Unsubscribe(userID, channelID string) error {
	_, err := r.db.Exec(`
		DELETE FROM subscriptions
		WHERE user_id = $1 AND channel_id = $2
	`, userID, channelID)

	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	return nil
}

// GetSubscribers returns every user subscribed to a channel, joined with
// their Slack delivery destination. Users without a destination are
// included; the delivery fan-out decides how to handle them.
func (r *SubscriptionRepo) GetSubscribers(channelID string) ([]Subscriber, error) {
	rows, err := r.db.Query(`
		SELECT u.id, u.email, u.slack_channel_id
		FROM subscriptions s
		JOIN users u ON u.id = s.user_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at
	`, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []Subscriber
	for rows.Next() {
		var sub Subscriber
		if err := rows.Scan(&sub.UserID, &sub.Email, &sub.SlackChannelID); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber row: %w", err)
		}
		subscribers = append(subscribers, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriber rows: %w", err)
	}

	return subscribers, nil
}

func (r *SubscriptionRepo) ListForUser(userID string) ([]Subscription, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, channel_id, created_at
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subscriptions []Subscription
	for rows.Next() {
		var sub Subscription
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.ChannelID, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		subscriptions = append(subscriptions, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", err)
	}

	return subscriptions, nil
}

func (r *SubscriptionRepo) CountForChannel(channelID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1
	`, channelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return count, nil
}
