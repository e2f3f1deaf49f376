package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads a .env file from the working directory if there is one.
// Variables already set in the environment win.
func Load(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return ":8080"
	}
	return port
}

// CorsOrigins reads the comma separated CORS_ORIGINS list.
func CorsOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
