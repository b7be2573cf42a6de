// Package config provides configuration loading and validation for the
// voice agent service.
//
// It uses Viper to load configuration from a config.yml file and
// environment variables, with .env support via godotenv. Environment
// variables override file values using underscore-separated paths
// (e.g., OPENAI_API_KEY, SERVER_PORT).
//
// # Usage
//
//	cfg, err := config.Load()
package config
