// Package config loads process configuration from the environment.
// The server core never reads configuration itself; the binary feeds
// it the loaded values.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// Config holds the whole process configuration.
type Config struct {
	Server ServerConfig
}

// ServerConfig configures the listening socket and the connection
// handler.
type ServerConfig struct {
	Host string
	Port int

	// ReadBufferBytes bounds the single read per connection. Requests
	// beyond it are truncated, matching the reference behavior.
	ReadBufferBytes int

	// Sequential serves connections one at a time instead of one
	// goroutine per connection.
	Sequential bool

	// Optional hardening deadlines; zero disables them.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load builds the configuration from environment variables, falling
// back to the reference defaults (127.0.0.1:3000, 1024-byte buffer,
// concurrent dispatch, no timeouts).
func Load() (*Config, error) {
	port, err := getEnvAsIntOrDefault("SERVER_PORT", 3000)
	if err != nil {
		return nil, err
	}
	bufBytes, err := getEnvAsIntOrDefault("READ_BUFFER_BYTES", 1024)
	if err != nil {
		return nil, err
	}
	if bufBytes <= 0 {
		return nil, fmt.Errorf("config: READ_BUFFER_BYTES must be positive, got %d", bufBytes)
	}
	seq, err := getEnvAsBoolOrDefault("SEQUENTIAL", false)
	if err != nil {
		return nil, err
	}
	readTO, err := getEnvAsDurationOrDefault("READ_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	writeTO, err := getEnvAsDurationOrDefault("WRITE_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	return &Config{
		Server: ServerConfig{
			Host:            getEnvOrDefault("SERVER_HOST", "127.0.0.1"),
			Port:            port,
			ReadBufferBytes: bufBytes,
			Sequential:      seq,
			ReadTimeout:     readTO,
			WriteTimeout:    writeTO,
		},
	}, nil
}

// ServerAddress returns the host:port string to bind.
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsIntOrDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func getEnvAsBoolOrDefault(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}

func getEnvAsDurationOrDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
