package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jadegt/joyeria-manager/internal/api/http"
	"github.com/jadegt/joyeria-manager/internal/report"
	"github.com/jadegt/joyeria-manager/internal/source/supabase"
	"github.com/jadegt/joyeria-manager/internal/store"
	"github.com/jadegt/joyeria-manager/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	// Source selects the table backend: "mysql" (default) or "supabase".
	Source string `mapstructure:"source"`

	DB       store.Config    `mapstructure:"mysql"`
	Supabase supabase.Config `mapstructure:"supabase"`
	Report   report.Config   `mapstructure:"report"`
	Logger   log.Config      `mapstructure:"logger"`
	HTTP     httpapi.Config  `mapstructure:"http"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Env vars use underscores and uppercase, e.g., MYSQL_DSN, SUPABASE_URL.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	// Try to read config file (optional - can work with env vars only)
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/joyeria-manager")
		viper.AddConfigPath("/etc/joyeria-manager")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Construct the MySQL DSN from individual env vars when it is not set.
	if config.DB.DSN == "" {
		host := os.Getenv("MYSQL_HOST")
		port := os.Getenv("MYSQL_PORT")
		user := os.Getenv("MYSQL_USER")
		password := os.Getenv("MYSQL_PASSWORD")
		database := os.Getenv("MYSQL_DATABASE")

		if host != "" && user != "" && database != "" {
			if port == "" {
				port = "3306"
			}
			config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true",
				user, password, host, port, database)
		}
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars() {
	viper.BindEnv("source", "SOURCE")

	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	viper.BindEnv("mysql.date_from", "MYSQL_DATE_FROM")
	viper.BindEnv("mysql.date_to", "MYSQL_DATE_TO")

	// Supabase
	viper.BindEnv("supabase.url", "SUPABASE_URL")
	viper.BindEnv("supabase.api_key", "SUPABASE_API_KEY")
	viper.BindEnv("supabase.timeout", "SUPABASE_TIMEOUT")

	// Report
	viper.BindEnv("report.fallback_margin", "REPORT_FALLBACK_MARGIN")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.rate_limit", "HTTP_RATE_LIMIT")
	viper.BindEnv("http.rate_limit_window", "HTTP_RATE_LIMIT_WINDOW")
}
