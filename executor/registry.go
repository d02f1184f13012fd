package executor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"execengine/config"
	"execengine/model"
)

// DefaultKind is the tag whose executor doubles as the fallback for unknown
// task kinds, so callers need not special-case new kinds before the registry
// configuration catches up.
const DefaultKind = model.KindOnline

var ErrNoExecutor = errors.New("no executor registered for task kind")

// Factory constructs one executor driver from configuration.
type Factory func(cfg config.Config, deps Deps) (Executor, error)

// Deps bundles the collaborators shared by all drivers.
type Deps struct {
	Logger       *zap.Logger
	ContainerLog *logrus.Logger
	Ports        PortAllocator
	Heartbeat    HeartbeatTracker
	Validation   *ValidationReporter
}

// DefaultFactories returns the built-in driver table. Additional drivers are
// added here or passed explicitly by the caller at startup.
func DefaultFactories() map[string]Factory {
	return map[string]Factory{
		"docker": func(cfg config.Config, deps Deps) (Executor, error) {
			return NewDockerExecutor(cfg, deps)
		},
	}
}

// Registry is the immutable kind-to-executor mapping, loaded once at process
// start. Immutability after load makes it safe to share across goroutines
// without locking.
type Registry struct {
	executors map[model.TaskKind]Executor
}

// LoadRegistry resolves the configured kind-to-factory mapping. Any entry
// that names an unknown factory, or whose construction fails, is an error the
// caller must treat as fatal: a half-loaded registry is worse than a crash.
// An empty configuration registers the docker driver under DefaultKind.
func LoadRegistry(cfg config.Config, deps Deps, factories map[string]Factory) (*Registry, error) {
	mapping := map[string]string{}
	if cfg.ExecutorRegistry != "" {
		if err := json.Unmarshal([]byte(cfg.ExecutorRegistry), &mapping); err != nil {
			return nil, fmt.Errorf("parse executor registry config: %w", err)
		}
	}
	if len(mapping) == 0 {
		mapping[string(DefaultKind)] = "docker"
	}

	r := &Registry{executors: make(map[model.TaskKind]Executor, len(mapping))}
	for kind, factoryName := range mapping {
		factory, ok := factories[factoryName]
		if !ok {
			return nil, fmt.Errorf("unknown executor factory %q for kind %q", factoryName, kind)
		}
		ex, err := factory(cfg, deps)
		if err != nil {
			return nil, fmt.Errorf("construct executor %q for kind %q: %w", factoryName, kind, err)
		}
		r.executors[model.TaskKind(kind)] = ex
	}
	return r, nil
}

// GetExecutor returns the executor for kind. Unknown kinds fall back to the
// DefaultKind entry when one is registered.
func (r *Registry) GetExecutor(kind model.TaskKind) (Executor, error) {
	if ex, ok := r.executors[kind]; ok {
		return ex, nil
	}
	if ex, ok := r.executors[DefaultKind]; ok {
		return ex, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoExecutor, kind)
}

// Kinds lists the registered task kinds.
func (r *Registry) Kinds() []model.TaskKind {
	kinds := make([]model.TaskKind, 0, len(r.executors))
	for k := range r.executors {
		kinds = append(kinds, k)
	}
	return kinds
}
