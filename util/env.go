package util

import "os"

// getEnv retrieves an environment variable or returns a fallback.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
