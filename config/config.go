package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Slot  SlotConfig
}

type AppConfig struct {
	Port           string
	Env            string
	AllowedOrigins string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SlotConfig controls candidate slot generation and query range bounds.
// Defaults match the original booking product: 30-minute grid, 09:00-18:00
// working day, 60-day lookahead.
type SlotConfig struct {
	GranularityMinutes int
	DayStart           string // HH:MM
	DayEnd             string // HH:MM
	DefaultRangeDays   int
	MaxRangeDays       int
	CacheTTL           time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("SLOT_CACHE_TTL"))
	if err != nil {
		cacheTTL = time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			AllowedOrigins: viper.GetString("APP_CORS_ALLOWED_ORIGINS"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Slot: SlotConfig{
			GranularityMinutes: viper.GetInt("SLOT_GRANULARITY_MINUTES"),
			DayStart:           viper.GetString("SLOT_DAY_START"),
			DayEnd:             viper.GetString("SLOT_DAY_END"),
			DefaultRangeDays:   viper.GetInt("SLOT_DEFAULT_RANGE_DAYS"),
			MaxRangeDays:       viper.GetInt("SLOT_MAX_RANGE_DAYS"),
			CacheTTL:           cacheTTL,
		},
	}

	applySlotDefaults(&config.Slot)

	return config, nil
}

func applySlotDefaults(s *SlotConfig) {
	if s.GranularityMinutes <= 0 {
		s.GranularityMinutes = 30
	}
	if s.DayStart == "" {
		s.DayStart = "09:00"
	}
	if s.DayEnd == "" {
		s.DayEnd = "18:00"
	}
	if s.DefaultRangeDays <= 0 {
		s.DefaultRangeDays = 60
	}
	if s.MaxRangeDays <= 0 {
		s.MaxRangeDays = 90
	}
}
