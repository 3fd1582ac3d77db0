// Package configs loads application configuration from the environment.
package configs

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string `mapstructure:"PORT"`
	MongoURI        string `mapstructure:"MONGO_URI"`
	DBName          string `mapstructure:"DB_NAME"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	TokenTTLMinutes int    `mapstructure:"TOKEN_TTL_MINUTES"`
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// Load reads configuration from environment variables with sane defaults.
// JWT_SECRET has no default on purpose; main refuses to start without it.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "inkwell")
	v.SetDefault("TOKEN_TTL_MINUTES", 60)

	// AutomaticEnv alone does not surface env vars through Unmarshal;
	// BindEnv each key explicitly.
	for _, key := range []string{"PORT", "MONGO_URI", "DB_NAME", "JWT_SECRET", "TOKEN_TTL_MINUTES"} {
		if err := v.BindEnv(key); err != nil {
			log.Fatalf("bind env %s: %v", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("unable to decode config: %v", err)
	}
	return &cfg
}
