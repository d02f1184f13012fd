package executor

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
	"go.uber.org/zap"

	"execengine/model"
)

// verifyStartupHealth inspects a freshly launched container after a short
// delay. A container that already exited is classified from its log tail,
// reported to the validation channel when applicable, and removed so it is
// not left dangling. The returned error carries the classified message.
func (e *DockerExecutor) verifyStartupHealth(ctx context.Context, name string, req *model.ExecutionRequest) error {
	time.Sleep(e.healthCheckDelay)

	insp, err := e.cli.ContainerInspect(ctx, name)
	if err != nil {
		// Cannot verify; assume the launch stands rather than failing a
		// submission on an inspect hiccup.
		e.logger.Warn("Startup health check could not inspect container",
			zap.String("executor", name), zap.Error(err))
		return nil
	}
	if insp.State == nil || insp.State.Running {
		return nil
	}

	logs := e.containerLogTail(ctx, name)
	msg := ClassifyStartupFailure(logs, insp.State.ExitCode)
	e.clog.Printf("Executor %s died after start (exit %d): %s", name, insp.State.ExitCode, msg)

	if req.Kind == model.KindValidation {
		e.validation.Report(req.ValidationID, StageStartContainer, msg, 100, boolPtr(false), msg)
	}
	if err := e.DeleteExecutor(ctx, name); err != nil {
		e.logger.Warn("Failed to clean up dead executor", zap.String("executor", name), zap.Error(err))
	}
	return errors.New(msg)
}

// containerLogTail fetches the trailing log output of a container. Errors
// yield an empty tail; classification then falls back to exit-code rules.
func (e *DockerExecutor) containerLogTail(ctx context.Context, name string) string {
	rc, err := e.cli.ContainerLogs(ctx, name, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Tail:       "60",
	})
	if err != nil {
		return ""
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := stdcopy.StdCopy(&buf, &buf, rc); err != nil {
		return buf.String()
	}
	return buf.String()
}
