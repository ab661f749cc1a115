package config

import "github.com/kelseyhightower/envconfig"

// Server holds configuration for the dashboard API server.
type Server struct {
	Port          int    `envconfig:"DAYSTART_PORT" default:"8080"`
	DefaultUserID string `envconfig:"DAYSTART_USER_ID" default:"default-user"`
	WeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY"`
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
