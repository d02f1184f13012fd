package logger

import (
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// New builds the service-level zap logger. Development gets the console
// encoder, everything else the JSON production config.
func New(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewContainerLog opens the logrus logger that records container lifecycle
// events to a file, separate from the structured service log.
func NewContainerLog(path string) (*logrus.Logger, error) {
	l := logrus.New()
	if path == "" {
		return l, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	l.SetOutput(f)
	return l, nil
}
