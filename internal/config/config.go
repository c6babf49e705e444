package config

import (
	"os"
	"strings"
)

// Config holds 12-factor environment configuration for the soltrack binary.
// Endpoints and the request timeout are fixed and deliberately absent.
type Config struct {
	RPCClient  string
	Commitment string
	LogLevel   string
	LogFormat  string
}

var (
	rpcClients  = []string{"http", "solana-go"}
	commitments = []string{"processed", "confirmed", "finalized"}
	logLevels   = []string{"off", "debug", "info", "warn", "error"}
	logFormats  = []string{"json", "text"}
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// oneOfEnv returns the lower-cased value of key when it is in allowed, else def.
func oneOfEnv(key, def string, allowed []string) string {
	v := strings.ToLower(strings.TrimSpace(env(key, def)))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}

// Load reads environment variables and returns a Config with defaults applied.
// Unrecognised values fall back to the default rather than failing.
func Load() Config {
	return Config{
		RPCClient:  oneOfEnv("SOLTRACK_RPC_CLIENT", "http", rpcClients),
		Commitment: oneOfEnv("SOLTRACK_COMMITMENT", "finalized", commitments),
		LogLevel:   oneOfEnv("SOLTRACK_LOG_LEVEL", "off", logLevels),
		LogFormat:  oneOfEnv("SOLTRACK_LOG_FORMAT", "json", logFormats),
	}
}
