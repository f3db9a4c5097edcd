// Package config loads typed configuration from environment variables.
//
// Values are read from the process environment (and an optional .env file via
// github.com/joho/godotenv) and parsed into structs with
// github.com/caarlos0/env/v11 field tags. Each configuration type is parsed
// once and cached, so packages can call Load for the same type repeatedly.
//
//	type Config struct {
//		Secret string        `env:"JWT_SECRET,required"`
//		TTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
