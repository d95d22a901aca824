package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Infow("env lookup", "var", env, "value", def, "default", true)
		return def
	}
	log.Infow("env lookup", "var", env, "value", value, "default", false)
	return value
}

// Must return the result of searching an env var, logging a warning if the env var is not set
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Warn("missing required env var ", env)
	}
	return value
}
