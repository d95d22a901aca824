package env

import (
	"strings"

	"go.uber.org/zap"
)

// ListDefault return the result of searching an env var split on commas, if the env var value is empty, return a default value
func ListDefault(log *zap.SugaredLogger, env, def string) []string {
	orDefault := OrDefault(log, env, def)
	parts := strings.Split(orDefault, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			values = append(values, t)
		}
	}
	return values
}
