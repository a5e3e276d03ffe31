package config

import "time"

// UI modes accepted by the ui setting.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// DefaultTimeLimit applies when neither the config file nor flags set one.
const DefaultTimeLimit = 30 * time.Second

// NoLimit is the time_limit value that disables the timer.
const NoLimit = "none"

// File mirrors the .quizrun.yml document.
type File struct {
	Version      int    `yaml:"version"`
	Questions    string `yaml:"questions"`
	Table        string `yaml:"table"`
	TimeLimit    string `yaml:"time_limit"`
	Shuffle      bool   `yaml:"shuffle"`
	WaitForReady *bool  `yaml:"wait_for_ready"`
	UI           string `yaml:"ui"`
	NoColor      bool   `yaml:"no_color"`
}

// Config holds resolved session settings.
type Config struct {
	Questions    string
	Table        string
	TimeLimit    time.Duration
	NoTimeLimit  bool
	Shuffle      bool
	WaitForReady bool
	UI           string
	NoColor      bool
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		TimeLimit:    DefaultTimeLimit,
		WaitForReady: true,
		UI:           UIAuto,
	}
}
