package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"execengine/config"
	"execengine/model"
)

type stubExecutor struct {
	BaseExecutor
	name string
}

func (s *stubExecutor) SubmitExecutor(ctx context.Context, req *model.ExecutionRequest, cb Callback) SubmitResult {
	return SubmitResult{Status: model.StatusSuccess, ExecutorName: s.name}
}
func (s *stubExecutor) GetCurrentTaskIDs(ctx context.Context, labelSelector string) TaskList {
	return TaskList{Status: model.StatusSuccess}
}
func (s *stubExecutor) DeleteExecutor(ctx context.Context, name string) error { return nil }
func (s *stubExecutor) GetExecutorCount(ctx context.Context, labelSelector string) CountResult {
	return CountResult{Status: model.StatusSuccess}
}
func (s *stubExecutor) GetContainerStatus(ctx context.Context, name string) ContainerStatus {
	return ContainerStatus{}
}
func (s *stubExecutor) GetContainerAddress(ctx context.Context, name string) (string, error) {
	return "", nil
}
func (s *stubExecutor) CancelTask(ctx context.Context, taskID int64) CancelResult {
	return CancelResult{Status: model.StatusSuccess}
}

func stubFactories() map[string]Factory {
	return map[string]Factory{
		"stub": func(cfg config.Config, deps Deps) (Executor, error) {
			return &stubExecutor{name: "stub"}, nil
		},
	}
}

func TestLoadRegistryEmptyConfigRegistersDefault(t *testing.T) {
	factories := stubFactories()
	factories["docker"] = factories["stub"]

	r, err := LoadRegistry(config.Config{}, Deps{}, factories)
	require.NoError(t, err)

	ex, err := r.GetExecutor(DefaultKind)
	require.NoError(t, err)
	assert.NotNil(t, ex)
}

func TestLoadRegistryUnknownFactoryIsFatal(t *testing.T) {
	cfg := config.Config{ExecutorRegistry: `{"online":"nope"}`}
	_, err := LoadRegistry(cfg, Deps{}, stubFactories())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown executor factory")
}

func TestLoadRegistryBadJSONIsFatal(t *testing.T) {
	cfg := config.Config{ExecutorRegistry: `not json`}
	_, err := LoadRegistry(cfg, Deps{}, stubFactories())
	require.Error(t, err)
}

func TestGetExecutorFallsBackToDefaultKind(t *testing.T) {
	cfg := config.Config{ExecutorRegistry: `{"online":"stub"}`}
	r, err := LoadRegistry(cfg, Deps{}, stubFactories())
	require.NoError(t, err)

	ex, err := r.GetExecutor(model.TaskKind("brand-new-kind"))
	require.NoError(t, err)
	assert.NotNil(t, ex)
}

func TestGetExecutorNoDefaultRaises(t *testing.T) {
	cfg := config.Config{ExecutorRegistry: `{"sandbox":"stub"}`}
	r, err := LoadRegistry(cfg, Deps{}, stubFactories())
	require.NoError(t, err)

	_, err = r.GetExecutor(model.TaskKind("unknown"))
	require.ErrorIs(t, err, ErrNoExecutor)

	// Exact matches still resolve.
	ex, err := r.GetExecutor(model.KindSandbox)
	require.NoError(t, err)
	assert.NotNil(t, ex)
}
