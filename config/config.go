package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	CMSBaseURL          string
	CMSAPIToken         string
	RedisAddr           string
	Port                string
	Platform            string
	FirebaseCredentials string
	RefreshInterval     time.Duration
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		CMSBaseURL:          os.Getenv("CMS_BASE_URL"),
		CMSAPIToken:         os.Getenv("CMS_API_TOKEN"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		Port:                os.Getenv("PORT"),
		Platform:            os.Getenv("PLATFORM"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		RefreshInterval:     refreshInterval(),
	}

}

func refreshInterval() time.Duration {
	raw := os.Getenv("REFRESH_INTERVAL")
	if raw == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		zap.S().Warnw("invalid REFRESH_INTERVAL, using default", "value", raw)
		return 30 * time.Second
	}
	return d
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
