package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"execengine/executor"
	"execengine/model"
)

var ErrInvalidRequest = errors.New("invalid request parameters")

// ExecutionService orchestrates requests against the executor registry. It
// owns no state beyond the registry reference and is safe for concurrent use.
type ExecutionService struct {
	registry *executor.Registry
	logger   *zap.Logger
}

func NewExecutionService(registry *executor.Registry, logger *zap.Logger) *ExecutionService {
	return &ExecutionService{registry: registry, logger: logger}
}

// Submit dispatches one execution request through the executor for its kind.
func (s *ExecutionService) Submit(ctx context.Context, req *model.ExecutionRequest, cb executor.Callback) model.SubmitResponse {
	if req.TaskID == 0 || req.UserName == "" {
		return model.SubmitResponse{Status: model.StatusFailure, ErrorMsg: ErrInvalidRequest.Error()}
	}

	ex, err := s.registry.GetExecutor(req.Kind)
	if err != nil {
		return model.SubmitResponse{Status: model.StatusFailure, ErrorMsg: err.Error()}
	}

	res := ex.SubmitExecutor(ctx, req, cb)
	s.logger.Info("Submission finished",
		zap.Int64("task_id", req.TaskID),
		zap.Int("subtask_id", req.SubtaskID),
		zap.String("kind", string(req.Kind)),
		zap.String("executor", res.ExecutorName),
		zap.String("status", res.Status))
	return model.SubmitResponse{
		Status:       res.Status,
		ExecutorName: res.ExecutorName,
		ErrorMsg:     res.ErrorMsg,
	}
}

// Cancel forwards a cancellation to the container owning the task.
func (s *ExecutionService) Cancel(ctx context.Context, req model.CancelRequest) model.CancelResponse {
	ex, err := s.registry.GetExecutor(req.Kind)
	if err != nil {
		return model.CancelResponse{Status: model.StatusFailure, ErrorMsg: err.Error()}
	}
	res := ex.CancelTask(ctx, req.TaskID)
	return model.CancelResponse{Status: res.Status, ErrorMsg: res.ErrorMsg}
}

// Status returns a fresh container status snapshot.
func (s *ExecutionService) Status(ctx context.Context, req model.StatusRequest) model.StatusResponse {
	ex, err := s.registry.GetExecutor(req.Kind)
	if err != nil {
		return model.StatusResponse{Status: "unknown", ErrorMsg: err.Error()}
	}
	st := ex.GetContainerStatus(ctx, req.ExecutorName)
	return model.StatusResponse{
		Exists:    st.Exists,
		Status:    st.Status,
		OOMKilled: st.OOMKilled,
		ExitCode:  st.ExitCode,
		ErrorMsg:  st.ErrorMsg,
	}
}

// Count enumerates running executors.
func (s *ExecutionService) Count(ctx context.Context, req model.CountRequest) model.CountResponse {
	ex, err := s.registry.GetExecutor(req.Kind)
	if err != nil {
		return model.CountResponse{Status: model.StatusFailure, ErrorMsg: err.Error()}
	}
	res := ex.GetExecutorCount(ctx, req.LabelSelector)
	return model.CountResponse{
		Status:   res.Status,
		Running:  res.Running,
		TaskIDs:  res.TaskIDs,
		ErrorMsg: res.ErrorMsg,
	}
}
