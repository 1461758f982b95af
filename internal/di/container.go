package di

import (
	"context"
	"time"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

// NewLogger builds the application logger. Logs are shipped to Loki when url is
// set; otherwise they go to stderr only.
func NewLogger(appName, environment, url string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	if environment == "dev" {
		config = zap.NewDevelopmentConfig()
	}

	if url == "" {
		return zap.Must(config.Build()).Sugar()
	}

	lokiConfig := zaploki.Config{
		Url:          url,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": appName, "environment": environment},
	}
	return zap.Must(zaploki.New(context.Background(), lokiConfig).WithCreateLogger(config)).Sugar()
}
