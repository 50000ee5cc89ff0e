package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		Port:              "8080",
		APIAccessKey:      "test-key",
		MonitorInterval:   5,
		WorkerCount:       4,
		YoutubeAPIKey:     "yt-key",
		YoutubeQPS:        4,
		CaptionLanguage:   "ko",
		OpenAIAPIKey:      "oa-key",
		OpenAIModel:       "gpt-4o-mini",
		SummaryLanguage:   "Korean",
		SlackBotToken:     "xoxb-test",
		SlackErrorChannel: "C0ERRORS",
		UserAgent:         "Test Agent",
		Timezone:          "UTC",
		Debug:             true,
		Version:           "test-version",
		DBHost:            "localhost",
		DBPort:            "5432",
		DBUser:            "test_user",
		DBPassword:        "test_password",
		DBName:            "test_db",
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.MonitorInterval != 5 {
		t.Errorf("Expected monitor interval 5, got %d", cfg.MonitorInterval)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("Expected worker count 4, got %d", cfg.WorkerCount)
	}
	if cfg.CaptionLanguage != "ko" {
		t.Errorf("Expected caption language 'ko', got '%s'", cfg.CaptionLanguage)
	}
	if cfg.SummaryLanguage != "Korean" {
		t.Errorf("Expected summary language 'Korean', got '%s'", cfg.SummaryLanguage)
	}
	if cfg.SlackErrorChannel != "C0ERRORS" {
		t.Errorf("Expected error channel 'C0ERRORS', got '%s'", cfg.SlackErrorChannel)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be true")
	}
}

func TestApplyTimezone(t *testing.T) {
	if err := applyTimezone("UTC"); err != nil {
		t.Errorf("Expected UTC to be a valid timezone, got %v", err)
	}
	if err := applyTimezone("Not/AZone"); err == nil {
		t.Error("Expected error for invalid timezone")
	}
}
