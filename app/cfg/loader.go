package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Database configuration
	DBHost     string `long:"db-host" env:"DB_HOST" default:"localhost" description:"Database host"`
	DBPort     string `long:"db-port" env:"DB_PORT" default:"5432" description:"Database port"`
	DBUser     string `long:"db-user" env:"DB_USER" default:"shook_user" description:"Database user"`
	DBPassword string `long:"db-password" env:"DB_PASSWORD" default:"shook_password" description:"Database password (required)" required:"true"`
	DBName     string `long:"db-name" env:"DB_NAME" default:"shook" description:"Database name"`

	// HTTP server
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for operator endpoints (optional)"`

	// Monitor configuration
	MonitorInterval int `long:"monitor-interval" env:"MONITOR_INTERVAL" default:"5" description:"Channel monitor interval in minutes"`
	WorkerCount     int `long:"worker-count" env:"WORKER_COUNT" default:"4" description:"Number of channel workers per sweep"`

	// YouTube Data API
	YoutubeAPIKey string  `long:"youtube-api-key" env:"YOUTUBE_API_KEY" description:"YouTube Data API v3 key (required)" required:"true"`
	YoutubeQPS    float64 `long:"youtube-qps" env:"YOUTUBE_QPS" default:"4" description:"Rate limit for YouTube Data API calls (requests per second)"`

	// Captions
	CaptionLanguage string `long:"caption-language" env:"CAPTION_LANGUAGE" default:"ko" description:"Preferred caption track language (BCP 47 tag)"`

	// Summarization
	OpenAIAPIKey    string `long:"openai-api-key" env:"OPENAI_API_KEY" description:"OpenAI API key (required)" required:"true"`
	OpenAIModel     string `long:"openai-model" env:"OPENAI_MODEL" default:"gpt-4o-mini" description:"OpenAI model used for summaries"`
	SummaryLanguage string `long:"summary-language" env:"SUMMARY_LANGUAGE" default:"Korean" description:"Language summaries are written in"`

	// Slack
	SlackBotToken     string `long:"slack-bot-token" env:"SLACK_BOT_TOKEN" description:"Slack bot token used for delivery (required)" required:"true"`
	SlackErrorChannel string `long:"slack-error-channel" env:"SLACK_ERROR_CHANNEL" description:"Slack channel ID for operational error reports"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"SHOOK/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Asia/Seoul)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBHost:            raw.DBHost,
		DBPort:            raw.DBPort,
		DBUser:            raw.DBUser,
		DBPassword:        raw.DBPassword,
		DBName:            raw.DBName,
		Port:              raw.Port,
		APIAccessKey:      raw.APIAccessKey,
		MonitorInterval:   raw.MonitorInterval,
		WorkerCount:       raw.WorkerCount,
		YoutubeAPIKey:     raw.YoutubeAPIKey,
		YoutubeQPS:        raw.YoutubeQPS,
		CaptionLanguage:   raw.CaptionLanguage,
		OpenAIAPIKey:      raw.OpenAIAPIKey,
		OpenAIModel:       raw.OpenAIModel,
		SummaryLanguage:   raw.SummaryLanguage,
		SlackBotToken:     raw.SlackBotToken,
		SlackErrorChannel: raw.SlackErrorChannel,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
