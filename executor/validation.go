package executor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Validation pipeline stages reported to the external status endpoint.
// Consumers key on these strings, so they stay stable.
const (
	StagePullImage      = "pulling image"
	StageStartContainer = "starting container"
)

// validationStatus is one staged-progress update keyed by validation id.
type validationStatus struct {
	ValidationID string `json:"validation_id"`
	Stage        string `json:"stage"`
	Message      string `json:"message"`
	Progress     int    `json:"progress"`
	Valid        *bool  `json:"valid,omitempty"`
	ErrorMsg     string `json:"error_msg,omitempty"`
}

// ValidationReporter streams validation-stage updates to an external status
// endpoint. Delivery is fire-and-forget; failures are logged, never surfaced.
type ValidationReporter struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewValidationReporter(endpoint string, logger *zap.Logger) *ValidationReporter {
	return &ValidationReporter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// Report posts one stage update. A nil reporter or empty validation id is a
// no-op so call sites need no guards.
func (r *ValidationReporter) Report(validationID, stage, message string, progress int, valid *bool, errMsg string) {
	if r == nil || r.endpoint == "" || validationID == "" {
		return
	}

	body, err := json.Marshal(validationStatus{
		ValidationID: validationID,
		Stage:        stage,
		Message:      message,
		Progress:     progress,
		Valid:        valid,
		ErrorMsg:     errMsg,
	})
	if err != nil {
		r.logger.Error("Failed to marshal validation status", zap.Error(err))
		return
	}

	go func() {
		resp, err := r.client.Post(r.endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			r.logger.Error("Failed to send validation status",
				zap.String("validation_id", validationID),
				zap.String("stage", stage),
				zap.Error(err))
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			r.logger.Error("Unexpected response from validation status endpoint",
				zap.String("validation_id", validationID),
				zap.String("status", resp.Status))
		}
	}()
}
