package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"execengine/config"
	"execengine/executor"
	"execengine/model"
)

type stubExecutor struct {
	executor.BaseExecutor
	submitted []*model.ExecutionRequest
}

func (s *stubExecutor) SubmitExecutor(ctx context.Context, req *model.ExecutionRequest, cb executor.Callback) executor.SubmitResult {
	s.submitted = append(s.submitted, req)
	return executor.SubmitResult{Status: model.StatusSuccess, ExecutorName: "exr-stub"}
}
func (s *stubExecutor) GetCurrentTaskIDs(ctx context.Context, labelSelector string) executor.TaskList {
	return executor.TaskList{Status: model.StatusSuccess}
}
func (s *stubExecutor) DeleteExecutor(ctx context.Context, name string) error { return nil }
func (s *stubExecutor) GetExecutorCount(ctx context.Context, labelSelector string) executor.CountResult {
	return executor.CountResult{Status: model.StatusSuccess, Running: 3}
}
func (s *stubExecutor) GetContainerStatus(ctx context.Context, name string) executor.ContainerStatus {
	return executor.ContainerStatus{Exists: true, Status: "running"}
}
func (s *stubExecutor) GetContainerAddress(ctx context.Context, name string) (string, error) {
	return "http://127.0.0.1:1234", nil
}
func (s *stubExecutor) CancelTask(ctx context.Context, taskID int64) executor.CancelResult {
	return executor.CancelResult{Status: model.StatusSuccess}
}

func newTestService(t *testing.T) (*ExecutionService, *stubExecutor) {
	t.Helper()
	stub := &stubExecutor{}
	factories := map[string]executor.Factory{
		"stub": func(cfg config.Config, deps executor.Deps) (executor.Executor, error) {
			return stub, nil
		},
	}
	cfg := config.Config{ExecutorRegistry: `{"online":"stub"}`}
	registry, err := executor.LoadRegistry(cfg, executor.Deps{}, factories)
	require.NoError(t, err)
	return NewExecutionService(registry, zap.NewNop()), stub
}

func TestSubmitRejectsInvalidRequest(t *testing.T) {
	svc, stub := newTestService(t)

	res := svc.Submit(context.Background(), &model.ExecutionRequest{}, nil)
	assert.Equal(t, model.StatusFailure, res.Status)
	assert.Empty(t, stub.submitted)
}

func TestSubmitDispatchesByKindWithFallback(t *testing.T) {
	svc, stub := newTestService(t)

	res := svc.Submit(context.Background(), &model.ExecutionRequest{
		TaskID: 1, SubtaskID: 1, UserName: "alice", Kind: model.TaskKind("future-kind"),
	}, nil)

	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, "exr-stub", res.ExecutorName)
	require.Len(t, stub.submitted, 1)
}

func TestCountAndStatusDelegate(t *testing.T) {
	svc, _ := newTestService(t)

	count := svc.Count(context.Background(), model.CountRequest{Kind: model.KindOnline})
	assert.Equal(t, 3, count.Running)

	status := svc.Status(context.Background(), model.StatusRequest{ExecutorName: "exr-stub"})
	assert.True(t, status.Exists)
	assert.Equal(t, "running", status.Status)
}
