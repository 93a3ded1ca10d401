package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mail     MailConfig
	Token    TokenConfig
	Session  SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	BaseURL string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
	Migrate  bool
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// Recipients under this domain never receive real mail. Keeps test
	// fixtures from emailing externally.
	ExcludeDomain string
}

type TokenConfig struct {
	ExpiryMinutes int
}

type SessionConfig struct {
	ExpiryHours int
	CookieName  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIGRATE", true)
	viper.SetDefault("TOKEN_EXPIRY_MINUTES", 60)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SESSION_COOKIE_NAME", "session_token")
	viper.SetDefault("MAIL_EXCLUDE_DOMAIN", "expresswebapptemplate.com")
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			BaseURL: viper.GetString("BASE_URL"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
			Migrate:  viper.GetBool("DB_MIGRATE"),
		},
		Mail: MailConfig{
			Host:          viper.GetString("SMTP_HOST"),
			Port:          viper.GetInt("SMTP_PORT"),
			User:          viper.GetString("SMTP_USER"),
			Password:      viper.GetString("SMTP_PASS"),
			From:          viper.GetString("EMAIL_FROM"),
			ExcludeDomain: viper.GetString("MAIL_EXCLUDE_DOMAIN"),
		},
		Token: TokenConfig{
			ExpiryMinutes: viper.GetInt("TOKEN_EXPIRY_MINUTES"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
			CookieName:  viper.GetString("SESSION_COOKIE_NAME"),
		},
	}

	return config, nil
}
