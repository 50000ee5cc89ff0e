package database

import (
	"database/sql"
	"fmt"
)

type VideoRepo struct {
	db *DB
}

func NewVideoRepository(db *DB) *VideoRepo {
	return &VideoRepo{db: db}
}

var _ VideoRepository = (*VideoRepo)(nil)

const videoColumns = `id, video_id, channel_id, title, published_at, status,
       summary, transcript, error_message, created_at, updated_at`

func (r *VideoRepo) GetByVideoID(videoID string) (*Video, error) {
	row := r.db.QueryRow(`
		SELECT `+videoColumns+`
		FROM videos
		WHERE video_id = $1
	`, videoID)

	video, err := scanVideo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return video, nil
}

func (r *VideoRepo) Create(video Video) (*Video, error) {
	row := r.db.QueryRow(`
		INSERT INTO videos (video_id, channel_id, title, published_at, status)
		VALUES ($1, $2, $3, $4, 'pending')
		ON CONFLICT (video_id) DO UPDATE SET updated_at = videos.updated_at
		RETURNING `+videoColumns+`
	`, video.VideoID, video.ChannelID, video.Title, video.PublishedAt)

	saved, err := scanVideo(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	return saved, nil
}

// MarkProcessed only succeeds for a video currently in pending state.
// This is the compare-and-set that makes the pipeline idempotent: a second
// attempt to process the same video finds no pending row and backs off.
func (r *VideoRepo) MarkProcessed(videoID, summary, transcript string) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE videos
		SET status = 'processed', summary = $2, transcript = $3, error_message = '', updated_at = NOW()
		WHERE video_id = $1 AND status = 'pending'
	`, videoID, summary, transcript)
	if err != nil {
		return false, fmt.Errorf("failed to mark video processed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *VideoRepo) MarkFailed(videoID, errorMessage string) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE videos
		SET status = 'failed', error_message = $2, updated_at = NOW()
		WHERE video_id = $1 AND status = 'pending'
	`, videoID, errorMessage)
	if err != nil {
		return false, fmt.Errorf("failed to mark video failed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *VideoRepo) ResetForRetry(videoID string) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE videos
		SET status = 'pending', error_message = '', updated_at = NOW()
		WHERE video_id = $1 AND status = 'failed'
	`, videoID)
	if err != nil {
		return false, fmt.Errorf("failed to reset video for retry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *VideoRepo) ListForChannel(channelID string, limit int) ([]Video, error) {
	rows, err := r.db.Query(`
		SELECT `+videoColumns+`
		FROM videos
		WHERE channel_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos for channel: %w", err)
	}
	defer rows.Close()

	return collectVideos(rows)
}

func (r *VideoRepo) ListRecent(limit int) ([]Video, error) {
	rows, err := r.db.Query(`
		SELECT `+videoColumns+`
		FROM videos
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent videos: %w", err)
	}
	defer rows.Close()

	return collectVideos(rows)
}

func (r *VideoRepo) CountByStatus() (map[VideoStatus]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM videos GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count videos by status: %w", err)
	}
	defer rows.Close()

	counts := map[VideoStatus]int{}
	for rows.Next() {
		var status VideoStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan video count row: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video count rows: %w", err)
	}

	return counts, nil
}

func collectVideos(rows *sql.Rows) ([]Video, error) {
	var videos []Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video row: %w", err)
		}
		videos = append(videos, *video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video rows: %w", err)
	}

	return videos, nil
}

func scanVideo(row rowScanner) (*Video, error) {
	var video Video
	err := row.Scan(
		&video.ID, &video.VideoID, &video.ChannelID, &video.Title,
		&video.PublishedAt, &video.Status, &video.Summary, &video.Transcript,
		&video.ErrorMessage, &video.CreatedAt, &video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &video, nil
}
