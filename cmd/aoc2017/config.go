// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/aoc2017/internal/input"
	"github.com/pdiddy/aoc2017/internal/store"
	"github.com/pdiddy/aoc2017/pkg/types"
)

func setDefaults() {
	viper.SetDefault("inputs_dir", input.DefaultDir)
	viper.SetDefault("data_dir", store.DefaultDataDir)
	viper.SetDefault("answers_file", "answers.yaml")
	viper.SetDefault("parallel", 0)
	viper.SetDefault("timeout", "0s")
	viper.SetDefault("log_level", "")
	viper.SetDefault("history.max_results", 50)
	viper.SetDefault("fetch.base_url", input.DefaultBaseURL)
	viper.SetDefault("fetch.user_agent", input.DefaultUserAgent)
	viper.SetDefault("fetch.rate", input.DefaultRate)
	viper.SetDefault("fetch.max_retries", 3)
	viper.SetDefault("fetch.timeout", input.DefaultTimeout)
}

// loadConfig assembles the configuration from flags, environment, the
// config file and defaults, in that order of precedence. The session
// cookie is resolved separately by the fetch command.
func loadConfig() types.Config {
	in := types.InputConfig{InputsDir: viper.GetString("inputs_dir")}
	return types.Config{
		Fetch: types.FetchConfig{
			InputConfig: in,
			BaseURL:     viper.GetString("fetch.base_url"),
			UserAgent:   viper.GetString("fetch.user_agent"),
			Timeout:     viper.GetDuration("fetch.timeout"),
			Rate:        viper.GetFloat64("fetch.rate"),
			MaxRetries:  viper.GetInt("fetch.max_retries"),
		},
		Run: types.RunConfig{
			InputConfig: in,
			AnswersFile: viper.GetString("answers_file"),
			Parallel:    viper.GetInt("parallel"),
			Timeout:     viper.GetDuration("timeout"),
		},
		Store: types.StoreConfig{
			DataDir:    viper.GetString("data_dir"),
			MaxResults: viper.GetInt("history.max_results"),
		},
		LogLevel: viper.GetString("log_level"),
	}
}
