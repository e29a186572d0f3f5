package logger

import (
	"log"

	"go.uber.org/zap"
)

// New builds the process-wide structured logger.
func New() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	return logger.Sugar()
}
