package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Booking BookingConfig
	Demo    DemoConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type SessionConfig struct {
	FilePath string
	Secret   string
	TTL      time.Duration
}

type BookingConfig struct {
	HorizonDays int
	SinkDelay   time.Duration
}

type DemoConfig struct {
	Email    string
	Password string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "ClinicConnect")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SESSION_FILE", ".clinicconnect/session")
	viper.SetDefault("SESSION_SECRET", "clinicconnect-local-session")
	viper.SetDefault("SESSION_TTL", "168h")
	viper.SetDefault("BOOKING_HORIZON_DAYS", 14)
	viper.SetDefault("BOOKING_SINK_DELAY", "2s")
	viper.SetDefault("DEMO_EMAIL", "patient@demo.com")
	viper.SetDefault("DEMO_PASSWORD", "demo123")

	// A missing .env is fine, defaults and the environment cover everything.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 7 * 24 * time.Hour
	}

	sinkDelay, err := time.ParseDuration(viper.GetString("BOOKING_SINK_DELAY"))
	if err != nil {
		sinkDelay = 2 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
		},
		Session: SessionConfig{
			FilePath: viper.GetString("SESSION_FILE"),
			Secret:   viper.GetString("SESSION_SECRET"),
			TTL:      sessionTTL,
		},
		Booking: BookingConfig{
			HorizonDays: viper.GetInt("BOOKING_HORIZON_DAYS"),
			SinkDelay:   sinkDelay,
		},
		Demo: DemoConfig{
			Email:    viper.GetString("DEMO_EMAIL"),
			Password: viper.GetString("DEMO_PASSWORD"),
		},
	}

	return config, nil
}
