// Package config assembles the client's configuration from the
// environment, with an optional config.yaml overriding the map defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults point at the deployed Cloud Run services; a config.yaml or
// environment variables redirect them for local development.
const (
	defaultGeoJSONURL    = "https://fastapi-service-34404463322.us-central1.run.app/geojson"
	defaultUserNewsURL   = "https://sqs-backend-573766487049.us-central1.run.app/user_news"
	defaultStatsURL      = "https://sqs-backend-573766487049.us-central1.run.app/user_stats"
	defaultListenAddress = ":8080"
)

type Config struct {
	ListenAddress string `yaml:"listen_address"`

	Endpoints struct {
		GeoJSON    string `yaml:"geojson"`
		Stats      string `yaml:"stats"`
		Vote       string `yaml:"vote"`
		Submission string `yaml:"submission"`
	} `yaml:"endpoints"`

	// FirebaseAPIKey is the web API key used for interactive sign-in.
	// Service credentials and the maps/OpenAI keys stay in env vars.
	FirebaseAPIKey string `yaml:"firebase_api_key"`
}

// Load reads environment variables and, when path names an existing
// file, layers the YAML values on top of the defaults.
func Load(path string) (Config, error) {
	var cfg Config
	cfg.ListenAddress = defaultListenAddress
	cfg.Endpoints.GeoJSON = defaultGeoJSONURL
	cfg.Endpoints.Stats = defaultStatsURL
	cfg.Endpoints.Vote = defaultUserNewsURL
	cfg.Endpoints.Submission = defaultUserNewsURL
	cfg.FirebaseAPIKey = os.Getenv("FIREBASE_API_KEY")

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, nil
			}
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}

		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("error parsing config file: %w", err)
		}
		merge(&cfg, file)
	}
	return cfg, nil
}

func merge(cfg *Config, file Config) {
	if file.ListenAddress != "" {
		cfg.ListenAddress = file.ListenAddress
	}
	if file.Endpoints.GeoJSON != "" {
		cfg.Endpoints.GeoJSON = file.Endpoints.GeoJSON
	}
	if file.Endpoints.Stats != "" {
		cfg.Endpoints.Stats = file.Endpoints.Stats
	}
	if file.Endpoints.Vote != "" {
		cfg.Endpoints.Vote = file.Endpoints.Vote
	}
	if file.Endpoints.Submission != "" {
		cfg.Endpoints.Submission = file.Endpoints.Submission
	}
	if file.FirebaseAPIKey != "" {
		cfg.FirebaseAPIKey = file.FirebaseAPIKey
	}
}
