package config

import "github.com/joho/godotenv"

type Config interface {
	EnvConfig
	AuthConfig
	StoreConfig
	VideoConfig
	CorsConfig
}

type mainConfig struct {
	EnvVars
	Auth
	Storage
	Video
	Cors
}

// New loads a .env file when present and returns the environment-backed
// configuration.
func New() Config {
	_ = godotenv.Load()
	return mainConfig{}
}
