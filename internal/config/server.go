package config

import (
	"fmt"
	"strings"
	"time"

	"inventory-optimizer/internal/allocator"

	"github.com/spf13/viper"
)

// Server holds API server settings. Values come from an optional YAML file
// (SERVER_CONFIG) overridden by environment variables.
type Server struct {
	Port           string        `mapstructure:"port"`
	Env            string        `mapstructure:"env"`
	StaticDir      string        `mapstructure:"static_dir"`
	AllowedOrigins []string      `mapstructure:"-"`
	Policy         string        `mapstructure:"validation_policy"`
	ResultCacheTTL time.Duration `mapstructure:"result_cache_ttl"`
}

var serverEnv = map[string]string{
	"port":                 "API_PORT",
	"env":                  "API_ENV",
	"static_dir":           "STATIC_DIR",
	"cors_allowed_origins": "CORS_ALLOWED_ORIGINS",
	"validation_policy":    "VALIDATION_POLICY",
	"result_cache_ttl":     "RESULT_CACHE_TTL",
}

// LoadServer reads server settings. path may be empty.
func LoadServer(path string) (*Server, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("static_dir", "./web/dist")
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("validation_policy", string(allocator.PolicyFailFast))
	v.SetDefault("result_cache_ttl", "1h")
	for key, env := range serverEnv {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read server config: %w", err)
		}
	}

	var s Server
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode server config: %w", err)
	}
	s.AllowedOrigins = splitList(v.GetString("cors_allowed_origins"))
	if _, err := allocator.ParsePolicy(s.Policy); err != nil {
		return nil, err
	}
	return &s, nil
}

// Production reports whether the server runs with API_ENV=production.
func (s *Server) Production() bool {
	return strings.EqualFold(s.Env, "production")
}

// Allocator builds the allocator for request handling.
func (s *Server) Allocator() *allocator.Allocator {
	p, _ := allocator.ParsePolicy(s.Policy)
	return allocator.New(allocator.WithPolicy(p))
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
