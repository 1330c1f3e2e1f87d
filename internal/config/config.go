package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultAPIBase is the vendor host used when CHATKIT_API_BASE is unset.
	DefaultAPIBase = "https://api.openai.com"
	// DefaultScriptURL is the CDN location of the ChatKit widget runtime.
	DefaultScriptURL = "https://cdn.platform.openai.com/deployments/chatkit/chatkit.js"
)

// Config aggregates every setting the gateway consumes.
type Config struct {
	Server  ServerConfig
	ChatKit ChatKitConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, ChatKit: loadChatKitConfig()}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr          string
	AllowedOrigin string
}

// loadServerConfig parses the listen address.
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	allowedOrigin := getEnvOrDefault("ALLOWED_ORIGIN", "*")

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port, AllowedOrigin: allowedOrigin}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigin: allowedOrigin}, nil
}

// ChatKitConfig describes the upstream ChatKit API and the identity cookie.
type ChatKitConfig struct {
	APIKey            string
	APIBase           string
	DefaultWorkflowID string
	ScriptURL         string
	SecureCookies     bool
}

func loadChatKitConfig() ChatKitConfig {
	return ChatKitConfig{
		APIKey:            strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		APIBase:           getEnvOrDefault("CHATKIT_API_BASE", DefaultAPIBase),
		DefaultWorkflowID: strings.TrimSpace(os.Getenv("CHATKIT_WORKFLOW_ID")),
		ScriptURL:         getEnvOrDefault("CHATKIT_SCRIPT_URL", DefaultScriptURL),
		SecureCookies:     strings.EqualFold(getEnvOrDefault("APP_ENV", "development"), "production"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
