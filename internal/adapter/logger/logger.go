package logger

import "go.uber.org/zap"

// New builds the process logger: production JSON to stdout, or a
// human-readable console logger in development.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}
