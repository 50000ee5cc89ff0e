package cfg

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// HTTP server
	Port         string
	APIAccessKey string

	// Monitor configuration
	MonitorInterval int
	WorkerCount     int

	// YouTube Data API
	YoutubeAPIKey string
	YoutubeQPS    float64

	// Captions
	CaptionLanguage string

	// Summarization
	OpenAIAPIKey    string
	OpenAIModel     string
	SummaryLanguage string

	// Slack
	SlackBotToken     string
	SlackErrorChannel string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
