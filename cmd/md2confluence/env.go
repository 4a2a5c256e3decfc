package main

import (
	"os"
	"strings"
)

// headerEnvPrefix marks environment variables carrying extra request
// headers: CONFLUENCE_HEADER_X-Custom=value becomes "X-Custom:value".
const headerEnvPrefix = "CONFLUENCE_HEADER_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly defaults without repeating flags in every job.
type envConfig struct {
	APIURL      string   // CONFLUENCE_API_URL
	Username    string   // CONFLUENCE_USERNAME
	Password    string   // CONFLUENCE_PASSWORD
	Space       string   // CONFLUENCE_SPACE
	AncestorID  string   // CONFLUENCE_ANCESTOR_ID
	GlobalLabel string   // CONFLUENCE_GLOBAL_LABEL
	Headers     []string // CONFLUENCE_HEADER_<NAME>
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		APIURL:      os.Getenv("CONFLUENCE_API_URL"),
		Username:    os.Getenv("CONFLUENCE_USERNAME"),
		Password:    os.Getenv("CONFLUENCE_PASSWORD"),
		Space:       os.Getenv("CONFLUENCE_SPACE"),
		AncestorID:  os.Getenv("CONFLUENCE_ANCESTOR_ID"),
		GlobalLabel: os.Getenv("CONFLUENCE_GLOBAL_LABEL"),
		Headers:     headersFromEnviron(os.Environ()),
	}
}

// headersFromEnviron extracts header pairs from CONFLUENCE_HEADER_* entries.
// The header name is the key with the prefix stripped; the value is taken
// verbatim.
func headersFromEnviron(environ []string) []string {
	var headers []string
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, headerEnvPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, headerEnvPrefix)
		if name == "" {
			continue
		}
		headers = append(headers, name+":"+value)
	}
	return headers
}
