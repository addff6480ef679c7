package config

import "os"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Environment variables bound on top of the CACAROIDS_ prefixed ones. The
// short names are what existing deployments already set.
var envBindings = map[string]string{
	"ssh.host":         "SSH_HOST",
	"ssh.port":         "SSH_PORT",
	"ssh.host_key":     "SSH_HOST_KEY",
	"ssh.display_host": "SSH_DISPLAY_HOST",
	"web.host":         "WEB_HOST",
	"web.port":         "WEB_PORT",
}

// ConfigPathEnv names the environment variable holding the config file path.
const ConfigPathEnv = "CACAROIDS_CONFIG"
