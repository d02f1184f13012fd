package model

import "encoding/json"

// TaskKind selects which executor driver handles a submission and how the
// launch environment is shaped.
type TaskKind string

const (
	KindOnline     TaskKind = "online"
	KindOffline    TaskKind = "offline"
	KindValidation TaskKind = "validation"
	KindSandbox    TaskKind = "sandbox"
)

// Submission status values reported through callbacks and returns.
const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusSuccess   = "success"
	StatusFailure   = "failed"
)

// BotConfig is one agent configuration entry of a submission. A non-empty
// CustomBaseImage overrides the request's default runtime image.
type BotConfig struct {
	BotID           string `json:"bot_id"`
	Name            string `json:"name,omitempty"`
	CustomBaseImage string `json:"custom_base_image,omitempty"`
}

// ExecutionRequest carries everything needed to dispatch one task step into a
// container. Immutable once constructed; lives only for one submission call.
type ExecutionRequest struct {
	TaskID       int64           `json:"task_id"`
	SubtaskID    int             `json:"subtask_id"`
	UserID       string          `json:"user_id"`
	UserName     string          `json:"user_name"`
	Kind         TaskKind        `json:"kind"`
	Bots         []BotConfig     `json:"bots,omitempty"`
	Image        string          `json:"image"`
	ExecutorName string          `json:"executor_name,omitempty"`
	ValidationID string          `json:"validation_id,omitempty"`
	SandboxID    string          `json:"sandbox_id,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
}

// CustomBaseImage returns the first per-bot image override, if any.
func (r *ExecutionRequest) CustomBaseImage() string {
	for _, bot := range r.Bots {
		if bot.CustomBaseImage != "" {
			return bot.CustomBaseImage
		}
	}
	return ""
}

// CallbackReport is one status transition delivered to the owning task store.
// Delivery is best-effort and at most once per transition.
type CallbackReport struct {
	TaskID       int64           `json:"task_id"`
	SubtaskID    int             `json:"subtask_id"`
	ExecutorName string          `json:"executor_name"`
	Progress     int             `json:"progress"`
	Status       string          `json:"status"`
	ErrorMsg     string          `json:"error_msg,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
}

// SubmitResponse is the reply published for a submission request.
type SubmitResponse struct {
	Status       string `json:"status"`
	ExecutorName string `json:"executor_name,omitempty"`
	ErrorMsg     string `json:"error_msg,omitempty"`
}

// CancelRequest asks the engine to forward a cancellation into the container
// that owns the task.
type CancelRequest struct {
	TaskID int64    `json:"task_id"`
	Kind   TaskKind `json:"kind,omitempty"`
}

// CancelResponse reports the outcome of a cancellation attempt.
type CancelResponse struct {
	Status   string `json:"status"`
	ErrorMsg string `json:"error_msg,omitempty"`
}

// StatusRequest asks for a fresh container status snapshot by executor name.
type StatusRequest struct {
	ExecutorName string   `json:"executor_name"`
	Kind         TaskKind `json:"kind,omitempty"`
}

// StatusResponse mirrors executor.ContainerStatus on the wire.
type StatusResponse struct {
	Exists    bool   `json:"exists"`
	Status    string `json:"status"`
	OOMKilled bool   `json:"oom_killed"`
	ExitCode  int    `json:"exit_code"`
	ErrorMsg  string `json:"error_msg,omitempty"`
}

// CountRequest asks how many executors are live for an optional label selector.
type CountRequest struct {
	LabelSelector string   `json:"label_selector,omitempty"`
	Kind          TaskKind `json:"kind,omitempty"`
}

// CountResponse enumerates live executors and the task ids they carry.
type CountResponse struct {
	Status   string  `json:"status"`
	Running  int     `json:"running"`
	TaskIDs  []int64 `json:"task_ids"`
	ErrorMsg string  `json:"error_msg,omitempty"`
}
