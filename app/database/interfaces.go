package database

type ChannelRepository interface {
	GetAll() ([]Channel, error)
	GetByChannelID(channelID string) (*Channel, error)
	Upsert(channel Channel) (*Channel, error)
	UpdateLatestVideoID(channelID, videoID string) error
	Delete(channelID string) error
	GetChannelCount() (int, error)
}

type SubscriptionRepository interface {
	Subscribe(userID, channelID string) error
	Unsubscribe(userID, channelID string) error
	GetSubscribers(channelID string) ([]Subscriber, error)
	ListForUser(userID string) ([]Subscription, error)
	CountForChannel(channelID string) (int, error)
}

type VideoRepository interface {
	GetByVideoID(videoID string) (*Video, error)
	Create(video Video) (*Video, error)
	// MarkProcessed transitions a video from pending to processed and stores
	// the summary and transcript. Returns false when the video was not in
	// pending state, which makes reprocessing safe under retries.
	MarkProcessed(videoID, summary, transcript string) (bool, error)
	// MarkFailed transitions a video from pending to failed with an error message.
	MarkFailed(videoID, errorMessage string) (bool, error)
	// ResetForRetry moves a failed video back to pending.
	ResetForRetry(videoID string) (bool, error)
	ListForChannel(channelID string, limit int) ([]Video, error)
	ListRecent(limit int) ([]Video, error)
	CountByStatus() (map[VideoStatus]int, error)
}

type UserRepository interface {
	GetByID(userID string) (*User, error)
	Create(email string, slackChannelID *string) (*User, error)
	SetSlackChannel(userID string, slackChannelID *string) error
}
