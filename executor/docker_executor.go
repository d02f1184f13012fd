package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/docker/go-connections/nat"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	"execengine/config"
	"execengine/internal"
	"execengine/model"
	"execengine/pkg"
)

// Container labels identifying executors owned by this engine.
const (
	OwnerLabel = "owner"
	OwnerValue = "execengine"

	labelTaskID      = "task_id"
	labelSubtaskID   = "subtask_id"
	labelUser        = "user"
	labelMode        = "mode"
	labelTaskType    = "task_type"
	labelNextSubtask = "next_subtask_id"
	labelHostPort    = "host_port"
)

// In-container HTTP endpoints.
const (
	taskExecutePath = "/api/v1/task/execute"
	taskCancelPath  = "/api/v1/task/cancel"
)

// Shared launcher binary mount for custom-base-image launches.
const (
	runnerMountPath = "/opt/runner"
	runnerBinary    = runnerMountPath + "/runner"
	runnerDigest    = runnerMountPath + "/.digest"
	runnerSyncName  = "exr-runner-sync"
)

// dockerAPI is the slice of the Docker SDK client this executor uses. Narrow
// on purpose so tests can fake the runtime.
type dockerAPI interface {
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerWait(ctx context.Context, containerID string, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error)
	ImageInspectWithRaw(ctx context.Context, imageID string) (types.ImageInspect, []byte, error)
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
}

// DockerExecutor realizes the Executor contract against a local Docker
// daemon. Submissions run synchronously on the calling goroutine; all
// serialization is delegated to the daemon's container-name registration and
// to the port allocator.
type DockerExecutor struct {
	BaseExecutor

	cli        dockerAPI
	httpc      *pkg.TraceClient
	ports      PortAllocator
	heartbeat  HeartbeatTracker
	validation *ValidationReporter
	logger     *zap.Logger
	clog       *logrus.Logger

	executorImage    string
	sharedVolume     string
	workspaceDir     string
	hostIP           string
	callbackURL      string
	heartbeatBaseURL string
	environment      string
	tracingEnabled   bool
	relaxSeccomp     bool
	healthCheckDelay time.Duration
}

// NewDockerExecutor connects to the Docker daemon and verifies it is
// reachable. An unreachable runtime is fatal at construction time; the
// process must not serve submissions against a dead daemon.
func NewDockerExecutor(cfg config.Config, deps Deps) (*DockerExecutor, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	if _, err := cli.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("docker runtime unavailable: %w", err)
	}
	return newDockerExecutor(cli, cfg, deps), nil
}

func newDockerExecutor(cli dockerAPI, cfg config.Config, deps Deps) *DockerExecutor {
	relax := false
	switch cfg.SeccompMode {
	case "unconfined":
		relax = true
	case "default":
		relax = false
	default:
		relax = kernelMajorVersion() > 0 && kernelMajorVersion() < 4
	}

	hbURL := cfg.HeartbeatURL
	if hbURL == "" {
		hbURL = DeriveHeartbeatBaseURL(cfg.CallbackURL)
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clog := deps.ContainerLog
	if clog == nil {
		clog = logrus.New()
	}

	return &DockerExecutor{
		cli:              cli,
		httpc:            pkg.NewTraceClient(30 * time.Second),
		ports:            deps.Ports,
		heartbeat:        deps.Heartbeat,
		validation:       deps.Validation,
		logger:           logger,
		clog:             clog,
		executorImage:    cfg.ExecutorImage,
		sharedVolume:     cfg.SharedVolume,
		workspaceDir:     cfg.WorkspaceDir,
		hostIP:           cfg.DockerHostIP,
		callbackURL:      cfg.CallbackURL,
		heartbeatBaseURL: hbURL,
		environment:      cfg.Environment,
		tracingEnabled:   cfg.TracingEnabled,
		relaxSeccomp:     relax,
		healthCheckDelay: 3 * time.Second,
	}
}

// DeriveHeartbeatBaseURL keeps heartbeat reporting on the same origin as the
// task-store callback. The engine and the containers it launches must agree on
// this URL, so both derive it the same way.
func DeriveHeartbeatBaseURL(callbackURL string) string {
	u, err := url.Parse(callbackURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/heartbeat"
}

// SubmitExecutor dispatches one execution request: reuse an existing
// container when the request names one, otherwise build and launch a fresh
// one. The terminal callback fires exactly once, except for validation and
// sandbox kinds which report through their own channels.
func (e *DockerExecutor) SubmitExecutor(ctx context.Context, req *model.ExecutionRequest, cb Callback) SubmitResult {
	var res SubmitResult
	if req.ExecutorName != "" {
		res = e.submitToExisting(ctx, req)
	} else {
		res = e.launchNew(ctx, req)
	}

	if req.Kind != model.KindValidation && req.Kind != model.KindSandbox {
		e.deliverCallback(cb, req, res)
	}
	return res
}

// deliverCallback reports the final outcome to the task store. Callback
// failures are logged and swallowed; reporting must never abort a submission.
func (e *DockerExecutor) deliverCallback(cb Callback, req *model.ExecutionRequest, res SubmitResult) {
	if cb == nil {
		return
	}

	report := model.CallbackReport{
		TaskID:       req.TaskID,
		SubtaskID:    req.SubtaskID,
		ExecutorName: res.ExecutorName,
	}
	if res.Status == model.StatusSuccess {
		report.Status = model.StatusRunning
		report.Progress = 30
	} else {
		report.Status = model.StatusFailed
		report.Progress = 100
		report.ErrorMsg = res.ErrorMsg
		// Carry the error text in the result payload too, so the end user
		// sees it without a separate lookup.
		if payload, err := json.Marshal(map[string]string{"value": res.ErrorMsg}); err == nil {
			report.Result = payload
		}
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Callback panicked", zap.Any("panic", r), zap.Int64("task_id", req.TaskID))
		}
	}()
	if err := cb(report); err != nil {
		e.logger.Error("Callback delivery failed",
			zap.Int64("task_id", req.TaskID),
			zap.Int("subtask_id", req.SubtaskID),
			zap.Error(err))
	}
}

// submitToExisting is the reuse path: the payload is POSTed to an already
// running container. A missing or portless target is always an error, never a
// silent re-create, so callers cannot accidentally fork duplicate executors.
func (e *DockerExecutor) submitToExisting(ctx context.Context, req *model.ExecutionRequest) SubmitResult {
	name := req.ExecutorName
	addr, err := e.GetContainerAddress(ctx, name)
	if err != nil {
		return failedSubmit(name, err.Error())
	}

	status, _, err := e.httpc.PostJSON(ctx, addr+taskExecutePath, req.Payload)
	if err != nil {
		return failedSubmit(name, fmt.Sprintf("failed to reach executor %q: %v", name, err))
	}
	if status != 200 {
		return failedSubmit(name, fmt.Sprintf("executor %q rejected task: HTTP %d", name, status))
	}

	// The container's heartbeat bookkeeping may have been cleaned up after a
	// prior completion; re-registration is idempotent.
	e.RegisterTaskForHeartbeat(ctx, req.TaskID, req.SubtaskID, name, req.Kind)

	e.clog.Printf("Reused executor %s for task %d/%d", name, req.TaskID, req.SubtaskID)
	return SubmitResult{Status: model.StatusSuccess, ExecutorName: name}
}

// launchNew is the create path: derive identity, build the launch spec, start
// the container and verify it survived.
func (e *DockerExecutor) launchNew(ctx context.Context, req *model.ExecutionRequest) SubmitResult {
	name := internal.DeriveExecutorName(req.UserName, req.TaskID, req.SubtaskID)

	img := req.Image
	customImage := req.CustomBaseImage()
	if customImage != "" {
		img = customImage
		if err := e.ensureRunnerBinary(ctx); err != nil {
			return failedSubmit(name, fmt.Sprintf("failed to prepare launcher binary: %v", err))
		}
	}

	port, err := e.ports.Allocate()
	if err != nil {
		return failedSubmit(name, fmt.Sprintf("failed to allocate port: %v", err))
	}

	cfg, hostCfg := e.buildLaunchSpec(ctx, req, name, img, port, customImage != "")
	if err := e.createAndStart(ctx, name, img, cfg, hostCfg); err != nil {
		e.ports.Release(port)
		stage := classifyLaunchStage(err)
		e.validation.Report(req.ValidationID, stage, err.Error(), 100, boolPtr(false), err.Error())
		return failedSubmit(name, fmt.Sprintf("failed to launch executor: %v", err))
	}
	e.clog.Printf("Started executor %s (image %s, port %d)", name, img, port)

	e.RegisterTaskForHeartbeat(ctx, req.TaskID, req.SubtaskID, name, req.Kind)

	if req.Kind == model.KindValidation {
		e.validation.Report(req.ValidationID, StageStartContainer, "container started", 60, nil, "")
	}

	// The binary-injection path is the one most likely to die right after
	// start from binary or library incompatibilities. The cleanup inside
	// the health check returns the port through DeleteExecutor.
	if customImage != "" {
		if err := e.verifyStartupHealth(ctx, name, req); err != nil {
			return failedSubmit(name, err.Error())
		}
	}

	return SubmitResult{Status: model.StatusSuccess, ExecutorName: name}
}

// createAndStart creates and starts the container, pulling the image first
// when the daemon does not have it yet.
func (e *DockerExecutor) createAndStart(ctx context.Context, name, img string, cfg *container.Config, hostCfg *container.HostConfig) error {
	resp, err := e.cli.ContainerCreate(ctx, cfg, hostCfg, nil, nil, name)
	if client.IsErrNotFound(err) {
		rc, pullErr := e.cli.ImagePull(ctx, img, image.PullOptions{})
		if pullErr != nil {
			return fmt.Errorf("pull image %q: %w", img, pullErr)
		}
		_, _ = io.Copy(io.Discard, rc)
		rc.Close()
		resp, err = e.cli.ContainerCreate(ctx, cfg, hostCfg, nil, nil, name)
	}
	if err != nil {
		return fmt.Errorf("create container %q: %w", name, err)
	}

	if err := e.cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		_ = e.cli.ContainerRemove(ctx, resp.ID, container.RemoveOptions{Force: true})
		return fmt.Errorf("start container %q: %w", name, err)
	}
	return nil
}

// buildLaunchSpec assembles the container and host configuration for a new
// executor.
func (e *DockerExecutor) buildLaunchSpec(ctx context.Context, req *model.ExecutionRequest, name, img string, port int, customImage bool) (*container.Config, *container.HostConfig) {
	labels := map[string]string{
		OwnerLabel:       OwnerValue,
		labelTaskID:      strconv.FormatInt(req.TaskID, 10),
		labelSubtaskID:   strconv.Itoa(req.SubtaskID),
		labelUser:        req.UserID,
		labelMode:        e.environment,
		labelTaskType:    string(req.Kind),
		labelNextSubtask: strconv.Itoa(req.SubtaskID + 1),
		labelHostPort:    strconv.Itoa(port),
	}

	heartbeatID := name
	if req.Kind == model.KindSandbox && req.SandboxID != "" {
		heartbeatID = req.SandboxID
	}
	heartbeatEnabled := "true"
	if req.Kind == model.KindValidation {
		heartbeatEnabled = "false"
	}

	env := []string{
		"EXECUTOR_NAME=" + name,
		"PORT=" + strconv.Itoa(port),
		"TZ=Etc/UTC",
		"LANG=C.UTF-8",
		"CALLBACK_URL=" + e.callbackURL,
		"HEARTBEAT_ID=" + heartbeatID,
		"HEARTBEAT_TYPE=" + string(req.Kind),
		"HEARTBEAT_ENABLED=" + heartbeatEnabled,
		"HEARTBEAT_BASE_URL=" + e.heartbeatBaseURL,
	}
	// Sandbox containers wait for an explicit HTTP trigger instead of
	// auto-running, so the payload stays out of the environment.
	if req.Kind != model.KindSandbox && len(req.Payload) > 0 {
		env = append(env, "TASK_PAYLOAD="+string(req.Payload))
	}
	if e.tracingEnabled {
		carrier := propagation.MapCarrier{}
		propagation.TraceContext{}.Inject(ctx, carrier)
		if tp := carrier.Get("traceparent"); tp != "" {
			env = append(env, "TRACEPARENT="+tp)
		}
	}

	containerPort := nat.Port(fmt.Sprintf("%d/tcp", port))
	cfg := &container.Config{
		Image:        img,
		Labels:       labels,
		Env:          env,
		ExposedPorts: nat.PortSet{containerPort: struct{}{}},
	}
	if customImage {
		cfg.Entrypoint = strslice.StrSlice{runnerBinary}
	}

	initProcess := true
	hostCfg := &container.HostConfig{
		Init: &initProcess,
		Binds: []string{
			"/var/run/docker.sock:/var/run/docker.sock",
			fmt.Sprintf("%s/%s:/workspace", e.workspaceDir, name),
		},
		PortBindings: nat.PortMap{
			containerPort: []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: strconv.Itoa(port)}},
		},
	}
	if customImage {
		hostCfg.Binds = append(hostCfg.Binds, e.sharedVolume+":"+runnerMountPath+":ro")
	}
	if e.relaxSeccomp {
		hostCfg.SecurityOpt = []string{"seccomp=unconfined"}
	}
	return cfg, hostCfg
}

// ensureRunnerBinary refreshes the shared launcher volume so its binary
// matches the current executor image digest. A short-lived helper container
// from the executor image does the copy; the shell guard makes repeat runs
// cheap.
func (e *DockerExecutor) ensureRunnerBinary(ctx context.Context) error {
	insp, _, err := e.cli.ImageInspectWithRaw(ctx, e.executorImage)
	if err != nil {
		return fmt.Errorf("inspect executor image %q: %w", e.executorImage, err)
	}
	digest := insp.ID

	script := fmt.Sprintf(
		`if [ "$(cat %s 2>/dev/null)" != "%s" ]; then cp /runner %s && printf %%s "%s" > %s; fi`,
		runnerDigest, digest, runnerBinary, digest, runnerDigest,
	)
	cfg := &container.Config{
		Image:      e.executorImage,
		Entrypoint: strslice.StrSlice{"sh", "-c", script},
		Labels:     map[string]string{OwnerLabel: OwnerValue, labelTaskType: "runner-sync"},
	}
	hostCfg := &container.HostConfig{
		Binds: []string{e.sharedVolume + ":" + runnerMountPath},
	}

	// The fixed name makes the daemon's name registration serialize
	// concurrent syncs: only one helper can write the volume at a time.
	resp, err := e.cli.ContainerCreate(ctx, cfg, hostCfg, nil, nil, runnerSyncName)
	if errdefs.IsConflict(err) {
		// A concurrent launch is already refreshing the volume; wait for
		// its helper to exit. The helper vanishing mid-wait means it
		// finished and was removed.
		if werr := e.waitRunnerSync(ctx, runnerSyncName); werr != nil && !errdefs.IsNotFound(werr) {
			return werr
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("create runner sync container: %w", err)
	}
	defer e.cli.ContainerRemove(context.WithoutCancel(ctx), resp.ID, container.RemoveOptions{Force: true})

	if err := e.cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return fmt.Errorf("start runner sync container: %w", err)
	}
	if err := e.waitRunnerSync(ctx, resp.ID); err != nil {
		return err
	}

	e.clog.Printf("Runner binary synced for image digest %s", digest)
	return nil
}

func (e *DockerExecutor) waitRunnerSync(ctx context.Context, ref string) error {
	waitCh, errCh := e.cli.ContainerWait(ctx, ref, container.WaitConditionNotRunning)
	select {
	case status := <-waitCh:
		if status.StatusCode != 0 {
			return fmt.Errorf("runner sync exited with code %d", status.StatusCode)
		}
	case err := <-errCh:
		return fmt.Errorf("wait for runner sync: %w", err)
	case <-time.After(2 * time.Minute):
		return fmt.Errorf("runner sync timed out")
	}
	return nil
}

// RegisterTaskForHeartbeat registers the task with the external running-task
// tracker. Best-effort: failures are logged and swallowed. Validation tasks
// are too short-lived to need OOM detection and sandbox tasks are tracked by
// their external sandbox id, so both kinds are skipped.
func (e *DockerExecutor) RegisterTaskForHeartbeat(ctx context.Context, taskID int64, subtaskID int, executorName string, taskType model.TaskKind) bool {
	if taskType == model.KindValidation || taskType == model.KindSandbox {
		return false
	}
	if e.heartbeat == nil {
		return false
	}
	if err := e.heartbeat.AddRunningTask(ctx, taskID, subtaskID, executorName, taskType); err != nil {
		e.logger.Warn("Heartbeat registration failed",
			zap.Int64("task_id", taskID),
			zap.String("executor", executorName),
			zap.Error(err))
		return false
	}
	return true
}

// GetContainerAddress resolves a container's reachable base URL. The
// ownership label is checked once; a container this engine does not own is
// treated the same as a missing one.
func (e *DockerExecutor) GetContainerAddress(ctx context.Context, name string) (string, error) {
	insp, err := e.cli.ContainerInspect(ctx, name)
	if err != nil {
		if client.IsErrNotFound(err) {
			return "", fmt.Errorf("executor %q not found", name)
		}
		return "", fmt.Errorf("inspect executor %q: %w", name, err)
	}
	if insp.Config == nil || insp.Config.Labels[OwnerLabel] != OwnerValue {
		return "", fmt.Errorf("executor %q not found", name)
	}

	hostPort := firstHostPort(insp)
	if hostPort == "" {
		return "", fmt.Errorf("no ports mapped for executor %q", name)
	}
	return fmt.Sprintf("http://%s:%s", e.hostIP, hostPort), nil
}

func firstHostPort(insp types.ContainerJSON) string {
	if insp.NetworkSettings == nil {
		return ""
	}
	for _, bindings := range insp.NetworkSettings.Ports {
		for _, b := range bindings {
			if b.HostPort != "" {
				return b.HostPort
			}
		}
	}
	return ""
}

// GetContainerStatus returns a fresh run-state snapshot. A missing container
// yields Exists=false, never an error.
func (e *DockerExecutor) GetContainerStatus(ctx context.Context, name string) ContainerStatus {
	insp, err := e.cli.ContainerInspect(ctx, name)
	if err != nil {
		if client.IsErrNotFound(err) {
			return ContainerStatus{Exists: false, Status: "unknown"}
		}
		return ContainerStatus{Exists: false, Status: "unknown", ErrorMsg: err.Error()}
	}
	if insp.State == nil {
		return ContainerStatus{Exists: true, Status: "unknown"}
	}

	status := insp.State.Status
	switch status {
	case "running", "exited", "paused":
	default:
		status = "unknown"
	}
	return ContainerStatus{
		Exists:    true,
		Status:    status,
		OOMKilled: insp.State.OOMKilled,
		ExitCode:  insp.State.ExitCode,
		ErrorMsg:  insp.State.Error,
	}
}

// GetExecutorTaskID reads the task id a container carries in its labels.
func (e *DockerExecutor) GetExecutorTaskID(ctx context.Context, name string) (string, bool) {
	insp, err := e.cli.ContainerInspect(ctx, name)
	if err != nil || insp.Config == nil {
		return "", false
	}
	id, ok := insp.Config.Labels[labelTaskID]
	return id, ok && id != ""
}

// DeleteExecutor force-removes a container and returns its host port to the
// allocator. Removing a container that is already gone is not an error.
func (e *DockerExecutor) DeleteExecutor(ctx context.Context, name string) error {
	port := 0
	if insp, err := e.cli.ContainerInspect(ctx, name); err == nil && insp.Config != nil {
		if p, perr := strconv.Atoi(insp.Config.Labels[labelHostPort]); perr == nil {
			port = p
		}
	}

	err := e.cli.ContainerRemove(ctx, name, container.RemoveOptions{Force: true})
	if err != nil && !client.IsErrNotFound(err) {
		return fmt.Errorf("remove executor %q: %w", name, err)
	}
	if port != 0 && e.ports != nil {
		e.ports.Release(port)
	}
	e.clog.Printf("Removed executor %s", name)
	return nil
}

// listOwned enumerates this engine's running containers, optionally narrowed
// by an extra "key=value" label selector. Always computed fresh.
func (e *DockerExecutor) listOwned(ctx context.Context, labelSelector string) ([]types.Container, error) {
	args := filters.NewArgs(filters.Arg("label", OwnerLabel+"="+OwnerValue))
	if labelSelector != "" {
		args.Add("label", labelSelector)
	}
	return e.cli.ContainerList(ctx, container.ListOptions{Filters: args})
}

// GetCurrentTaskIDs lists the task ids of all running executors.
func (e *DockerExecutor) GetCurrentTaskIDs(ctx context.Context, labelSelector string) TaskList {
	containers, err := e.listOwned(ctx, labelSelector)
	if err != nil {
		return TaskList{Status: model.StatusFailure, ErrorMsg: err.Error()}
	}

	list := TaskList{Status: model.StatusSuccess, TaskIDs: []int64{}, Containers: []string{}}
	for _, c := range containers {
		if id, err := strconv.ParseInt(c.Labels[labelTaskID], 10, 64); err == nil {
			list.TaskIDs = append(list.TaskIDs, id)
		}
		if len(c.Names) > 0 {
			list.Containers = append(list.Containers, trimContainerName(c.Names[0]))
		}
	}
	return list
}

// GetExecutorCount counts running executors and the tasks they carry.
func (e *DockerExecutor) GetExecutorCount(ctx context.Context, labelSelector string) CountResult {
	list := e.GetCurrentTaskIDs(ctx, labelSelector)
	if list.Status != model.StatusSuccess {
		return CountResult{Status: model.StatusFailure, ErrorMsg: list.ErrorMsg}
	}
	return CountResult{
		Status:  model.StatusSuccess,
		Running: len(list.Containers),
		TaskIDs: list.TaskIDs,
	}
}

// CancelTask forwards a cancellation into the container owning the task. Any
// lookup or transport failure comes back as a structured result.
func (e *DockerExecutor) CancelTask(ctx context.Context, taskID int64) CancelResult {
	containers, err := e.listOwned(ctx, fmt.Sprintf("%s=%d", labelTaskID, taskID))
	if err != nil {
		return CancelResult{Status: model.StatusFailure, ErrorMsg: fmt.Sprintf("list executors: %v", err)}
	}
	if len(containers) == 0 {
		return CancelResult{Status: model.StatusFailure, ErrorMsg: fmt.Sprintf("no executor found for task %d", taskID)}
	}

	name := ""
	if len(containers[0].Names) > 0 {
		name = trimContainerName(containers[0].Names[0])
	}
	addr, err := e.GetContainerAddress(ctx, name)
	if err != nil {
		return CancelResult{Status: model.StatusFailure, ErrorMsg: err.Error()}
	}

	cancelURL := fmt.Sprintf("%s%s?task_id=%d", addr, taskCancelPath, taskID)
	status, _, err := e.httpc.PostJSON(ctx, cancelURL, nil)
	if err != nil {
		return CancelResult{Status: model.StatusFailure, ErrorMsg: fmt.Sprintf("cancel task %d: %v", taskID, err)}
	}
	if status != 200 {
		return CancelResult{Status: model.StatusFailure, ErrorMsg: fmt.Sprintf("cancel task %d: HTTP %d", taskID, status)}
	}
	return CancelResult{Status: model.StatusSuccess}
}

func trimContainerName(name string) string {
	if len(name) > 0 && name[0] == '/' {
		return name[1:]
	}
	return name
}

func failedSubmit(name, msg string) SubmitResult {
	return SubmitResult{Status: model.StatusFailure, ExecutorName: name, ErrorMsg: msg}
}

func boolPtr(b bool) *bool { return &b }
