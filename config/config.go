// backend/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type EaterConfig struct {
	// TargetURL is the live list page; it doubles as the lookup key for the
	// web archive's capture index.
	TargetURL string `yaml:"target_url"`
	// CdxBaseURL is the capture-index endpoint of the web archive.
	CdxBaseURL string `yaml:"cdx_base_url"`
	// SnapshotURLPattern builds an archived-capture URL from a 14-digit
	// timestamp and the target URL, in that order.
	SnapshotURLPattern string `yaml:"snapshot_url_pattern"`
	// FromYear limits the capture index to captures from this year onward.
	FromYear string `yaml:"from_year"`
}

type SyncConfig struct {
	// MinRestaurants guards against partial or broken page captures being
	// misread as valid lists.
	MinRestaurants  int    `yaml:"min_restaurants"`
	FetchTimeoutStr string `yaml:"fetch_timeout"`
	FetchTimeout    time.Duration
	OutputPath      string `yaml:"output_path"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Eater    EaterConfig    `yaml:"eater"`
	Sync     SyncConfig     `yaml:"sync"`
}

var AppConfig Config

// LoadConfig reads configuration from the given YAML file and applies
// defaults for anything left unset. A DB_PASSWORD environment variable
// (usually supplied via .env) overrides the database password from the file.
func LoadConfig(configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(file, &AppConfig)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if pw := os.Getenv("DB_PASSWORD"); pw != "" {
		AppConfig.Database.Password = pw
	}

	if AppConfig.Sync.FetchTimeoutStr != "" {
		AppConfig.Sync.FetchTimeout, err = time.ParseDuration(AppConfig.Sync.FetchTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse fetch_timeout: %w", err)
		}
	}

	ApplyDefaults()

	return nil
}

// ApplyDefaults fills in defaults for the Eater list pipeline. LoadConfig
// calls it; tests and one-off runs without a config file can call it directly.
func ApplyDefaults() {
	if AppConfig.Eater.TargetURL == "" {
		AppConfig.Eater.TargetURL = "https://www.eater.com/maps/best-vancouver-restaurants-bc-canada"
	}
	if AppConfig.Eater.CdxBaseURL == "" {
		AppConfig.Eater.CdxBaseURL = "https://web.archive.org/cdx/search/cdx"
	}
	if AppConfig.Eater.SnapshotURLPattern == "" {
		AppConfig.Eater.SnapshotURLPattern = "https://web.archive.org/web/%sid_/%s"
	}
	if AppConfig.Eater.FromYear == "" {
		AppConfig.Eater.FromYear = "2017"
	}
	if AppConfig.Sync.MinRestaurants == 0 {
		AppConfig.Sync.MinRestaurants = 30
	}
	if AppConfig.Sync.FetchTimeout == 0 {
		AppConfig.Sync.FetchTimeout = 30 * time.Second
	}
	if AppConfig.Sync.OutputPath == "" {
		AppConfig.Sync.OutputPath = "data/versions.json"
	}
}
