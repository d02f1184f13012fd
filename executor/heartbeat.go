package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"execengine/model"
)

// HTTPHeartbeatTracker registers running tasks with the external heartbeat
// service over HTTP.
type HTTPHeartbeatTracker struct {
	baseURL string
	client  *http.Client
}

func NewHTTPHeartbeatTracker(baseURL string) *HTTPHeartbeatTracker {
	return &HTTPHeartbeatTracker{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (t *HTTPHeartbeatTracker) AddRunningTask(ctx context.Context, taskID int64, subtaskID int, executorName string, taskType model.TaskKind) error {
	body, err := json.Marshal(map[string]any{
		"task_id":       taskID,
		"subtask_id":    subtaskID,
		"executor_name": executorName,
		"task_type":     taskType,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/running-tasks", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("heartbeat tracker returned %s", resp.Status)
	}
	return nil
}
