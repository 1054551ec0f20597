package types

import "time"

// InputConfig holds settings for locating puzzle inputs on disk.
type InputConfig struct {
	// InputsDir is the directory holding dayNN.txt input files (default "inputs").
	InputsDir string `json:"inputs_dir" yaml:"inputs_dir"`
}

// FetchConfig holds settings for downloading puzzle inputs from the puzzle website.
type FetchConfig struct {
	InputConfig `yaml:",inline"`

	// BaseURL is the puzzle website root (default "https://adventofcode.com").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// UserAgent is the User-Agent header sent with HTTP requests. The puzzle
	// website asks automated tools to identify themselves.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// Session is the session cookie value used to authenticate downloads.
	Session string `json:"-" yaml:"-"`

	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Rate is the maximum number of requests per second (default 1).
	Rate float64 `json:"rate" yaml:"rate"`

	// MaxRetries is the number of retries on HTTP 429 and 5xx (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// Force re-downloads inputs that already exist on disk.
	Force bool `json:"force" yaml:"force"`
}

// RunConfig holds settings for the solve stage.
type RunConfig struct {
	InputConfig `yaml:",inline"`

	// AnswersFile is an optional YAML file with known answers used for verification.
	AnswersFile string `json:"answers_file" yaml:"answers_file"`

	// Parallel is the maximum number of days solved concurrently (default: number of CPUs).
	Parallel int `json:"parallel" yaml:"parallel"`

	// Timeout bounds the time spent on a single day (0 = no limit).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// StoreConfig holds settings for the run history database.
type StoreConfig struct {
	// DataDir is the directory holding the history database (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of history rows returned (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations.
type Config struct {
	Fetch    FetchConfig `json:"fetch" yaml:"fetch"`
	Run      RunConfig   `json:"run" yaml:"run"`
	Store    StoreConfig `json:"store" yaml:"store"`
	LogLevel string      `json:"log_level" yaml:"log_level"`
}
