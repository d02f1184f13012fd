package executor

import (
	"context"

	"execengine/model"
)

// Callback delivers one status transition to the owning task store. The
// engine logs and discards any error the callback returns; reporting failures
// never abort a submission.
type Callback func(report model.CallbackReport) error

// SubmitResult is the outcome of one submission.
type SubmitResult struct {
	Status       string
	ExecutorName string
	ErrorMsg     string
}

// CancelResult is the outcome of a cancellation attempt. Lookup and transport
// failures come back here instead of as errors.
type CancelResult struct {
	Status   string
	ErrorMsg string
}

// TaskList enumerates live executors and the task ids they carry.
type TaskList struct {
	Status     string
	TaskIDs    []int64
	Containers []string
	ErrorMsg   string
}

// CountResult reports how many executors are running.
type CountResult struct {
	Status   string
	Running  int
	TaskIDs  []int64
	ErrorMsg string
}

// ContainerStatus is a read-only view of a container's run state, recomputed
// on every query and never cached.
type ContainerStatus struct {
	Exists    bool
	Status    string
	OOMKilled bool
	ExitCode  int
	ErrorMsg  string
}

// HeartbeatTracker is the external running-task tracker. Containers ping it
// periodically; a stopped ping stream flags the task as crashed or OOM-killed.
type HeartbeatTracker interface {
	AddRunningTask(ctx context.Context, taskID int64, subtaskID int, executorName string, taskType model.TaskKind) error
}

// PortAllocator hands out free host ports for newly launched containers. The
// allocator carries its own synchronization; the executor itself holds no
// locks.
type PortAllocator interface {
	Allocate() (int, error)
	Release(port int)
}

// Executor is the uniform contract every runtime driver satisfies.
type Executor interface {
	SubmitExecutor(ctx context.Context, req *model.ExecutionRequest, cb Callback) SubmitResult
	GetCurrentTaskIDs(ctx context.Context, labelSelector string) TaskList
	DeleteExecutor(ctx context.Context, name string) error
	GetExecutorCount(ctx context.Context, labelSelector string) CountResult
	GetContainerStatus(ctx context.Context, name string) ContainerStatus
	GetContainerAddress(ctx context.Context, name string) (string, error)
	CancelTask(ctx context.Context, taskID int64) CancelResult

	// Optional capabilities with safe defaults, see BaseExecutor.
	GetExecutorTaskID(ctx context.Context, name string) (string, bool)
	RegisterTaskForHeartbeat(ctx context.Context, taskID int64, subtaskID int, executorName string, taskType model.TaskKind) bool
}

// BaseExecutor supplies no-op defaults for the optional capabilities so
// drivers without heartbeat support degrade gracefully instead of failing.
type BaseExecutor struct{}

func (BaseExecutor) GetExecutorTaskID(ctx context.Context, name string) (string, bool) {
	return "", false
}

func (BaseExecutor) RegisterTaskForHeartbeat(ctx context.Context, taskID int64, subtaskID int, executorName string, taskType model.TaskKind) bool {
	return false
}
