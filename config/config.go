package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Google Maps web service base URL.
const GOOGLE_MAPS_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api"

// Resource file names.
const RESOURCES_PATH_PREFIX = "resources"
const FACILITY_LOCATIONS_RESOURCE = "facility_locations.json"
const FACILITY_SCORES_RESOURCE = "facility_scores.csv"

// Config is the application configuration, loaded from environment
// variables (TRIP_ prefix) with an optional config.yaml override.
type Config struct {
	Env                   string `mapstructure:"env"`
	ServerAddress         string `mapstructure:"server_address"`
	RedisAddress          string `mapstructure:"redis_address"`
	RedisPassword         string `mapstructure:"redis_password"`
	RedisDB               int    `mapstructure:"redis_db"`
	GoogleMapsAPIKey      string `mapstructure:"google_maps_api_key"`
	GoogleMapsBaseURL     string `mapstructure:"google_maps_base_url"`
	CatalogPath           string `mapstructure:"catalog_path"`
	CatalogRefreshMinutes int    `mapstructure:"catalog_refresh_minutes"`
	RecommendationLimit   int    `mapstructure:"recommendation_limit"`
	NPSReorder            bool   `mapstructure:"nps_reorder"`
	RouteFallbackOnError  bool   `mapstructure:"route_fallback_on_error"`
}

// Load reads the configuration. Missing values fall back to defaults
// suitable for local development.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "dev")
	v.SetDefault("server_address", ":8080")
	v.SetDefault("redis_address", "redis:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("google_maps_api_key", "")
	v.SetDefault("google_maps_base_url", GOOGLE_MAPS_ENDPOINT_BASE)
	v.SetDefault("catalog_path", GetResourcePath(FACILITY_SCORES_RESOURCE))
	v.SetDefault("catalog_refresh_minutes", 60)
	v.SetDefault("recommendation_limit", 20)
	v.SetDefault("nps_reorder", true)
	v.SetDefault("route_fallback_on_error", true)

	v.SetEnvPrefix("TRIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(BaseDir())
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}

// GetResourcePath resolves a bundled resource file against the project
// root.
func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
