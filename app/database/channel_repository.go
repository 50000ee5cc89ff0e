package database

import (
	"database/sql"
	"fmt"
)

type ChannelRepo struct {
	db *DB
}

func NewChannelRepository(db *DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

var _ ChannelRepository = (*ChannelRepo)(nil)

const channelColumns = `id, channel_id, handle, title, thumbnail_url,
       subscriber_count, video_count, latest_video_id, created_at, updated_at`

func (r *ChannelRepo) GetAll() ([]Channel, error) {
	rows, err := r.db.Query(`
		SELECT ` + channelColumns + `
		FROM channels
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get channels: %w", err)
	}
	defer rows.Close()

	var channels []Channel
	for rows.Next() {
		channel, err := scanChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel row: %w", err)
		}
		channels = append(channels, *channel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating channel rows: %w", err)
	}

	return channels, nil
}

func (r *ChannelRepo) GetByChannelID(channelID string) (*Channel, error) {
	row := r.db.QueryRow(`
		SELECT `+channelColumns+`
		FROM channels
		WHERE channel_id = $1
	`, channelID)

	channel, err := scanChannel(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return channel, nil
}

func (r *ChannelRepo) Upsert(channel Channel) (*Channel, error) {
	row := r.db.QueryRow(`
		INSERT INTO channels (channel_id, handle, title, thumbnail_url, subscriber_count, video_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (channel_id) DO UPDATE
		SET handle = EXCLUDED.handle,
		    title = EXCLUDED.title,
		    thumbnail_url = EXCLUDED.thumbnail_url,
		    subscriber_count = EXCLUDED.subscriber_count,
		    video_count = EXCLUDED.video_count,
		    updated_at = NOW()
		RETURNING `+channelColumns+`
	`, channel.ChannelID, channel.Handle, channel.Title, channel.ThumbnailURL,
		channel.SubscriberCount, channel.VideoCount)

	saved, err := scanChannel(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert channel: %w", err)
	}

	return saved, nil
}

func (r *ChannelRepo) UpdateLatestVideoID(channelID, videoID string) error {
	_, err := r.db.Exec(`
		UPDATE channels
		SET latest_video_id = $2, updated_at = NOW()
		WHERE channel_id = $1
	`, channelID, videoID)

	if err != nil {
		return fmt.Errorf("failed to update latest video id: %w", err)
	}

	return nil
}

func (r *ChannelRepo) Delete(channelID string) error {
	_, err := r.db.Exec(`DELETE FROM channels WHERE channel_id = $1`, channelID)
	if err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	return nil
}

func (r *ChannelRepo) GetChannelCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM channels`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get channel count: %w", err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChannel(row rowScanner) (*Channel, error) {
	var channel Channel
	err := row.Scan(
		&channel.ID, &channel.ChannelID, &channel.Handle, &channel.Title,
		&channel.ThumbnailURL, &channel.SubscriberCount, &channel.VideoCount,
		&channel.LatestVideoID, &channel.CreatedAt, &channel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &channel, nil
}
