package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Upstream      UpstreamConfig
	Session       SessionConfig
	Cache         CacheConfig
	UI            UIConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
}

// UpstreamConfig points at the hosted recipe/auth REST service. The service
// is a black box: we only ever talk to it over its documented endpoints.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type SessionConfig struct {
	// TokenFile is the single durable key holding the bearer token string
	TokenFile string
}

type CacheConfig struct {
	ListTTLSeconds int  // recipe list/record cache TTL in seconds
	Disable        bool // read from upstream on every request
}

type UIConfig struct {
	BrowsePageSize    int
	DashboardPageSize int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	OTLPEndpoint   string
	ServiceName    string
	ServiceVersion string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction reports whether the app runs in a production environment
func (c *Config) IsProduction() bool {
	return !c.IsDevelopment()
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "")
	v.SetDefault("UPSTREAM_BASE_URL", "https://dummyjson.com")
	v.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 30)
	v.SetDefault("SESSION_TOKEN_FILE", ".dishflow/token")
	v.SetDefault("RECIPE_CACHE_TTL", 60)
	v.SetDefault("DISABLE_RECIPE_CACHE", false)
	v.SetDefault("BROWSE_PAGE_SIZE", 6)
	v.SetDefault("DASHBOARD_PAGE_SIZE", 9)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("OTLP_EXPORTER_ENDPOINT", "")
	v.SetDefault("SERVICE_NAME", "dishflow-web")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
	v.SetDefault("PROFILING_ENABLED", false)
	v.SetDefault("PROFILING_APP_NAME", "dishflow-web")
	v.SetDefault("PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	originsStr := v.GetString("ALLOWED_CORS_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        v.GetString("BASE_URL"),
			AllowedOrigins: allowedOrigins,
		},
		Upstream: UpstreamConfig{
			BaseURL:        strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
			TimeoutSeconds: v.GetInt("UPSTREAM_TIMEOUT_SECONDS"),
		},
		Session: SessionConfig{
			TokenFile: v.GetString("SESSION_TOKEN_FILE"),
		},
		Cache: CacheConfig{
			ListTTLSeconds: v.GetInt("RECIPE_CACHE_TTL"),
			Disable:        v.GetBool("DISABLE_RECIPE_CACHE"),
		},
		UI: UIConfig{
			BrowsePageSize:    v.GetInt("BROWSE_PAGE_SIZE"),
			DashboardPageSize: v.GetInt("DASHBOARD_PAGE_SIZE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint:   v.GetString("OTLP_EXPORTER_ENDPOINT"),
			ServiceName:    v.GetString("SERVICE_NAME"),
			ServiceVersion: v.GetString("SERVICE_VERSION"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("PROFILING_ENABLED"),
			Endpoint:              v.GetString("PROFILING_ENDPOINT"),
			AppName:               v.GetString("PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	return cfg, nil
}
