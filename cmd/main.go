package main

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"execengine/config"
	"execengine/executor"
	"execengine/logger"
	"execengine/natshandler"
	"execengine/service"
)

func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer zlog.Sync()

	clog, err := logger.NewContainerLog(cfg.ContainerLogFile)
	if err != nil {
		zlog.Fatal("Failed to open container log", zap.Error(err))
	}

	deps := executor.Deps{
		Logger:       zlog,
		ContainerLog: clog,
		Ports:        executor.NewRangeAllocator(cfg.PortRangeStart, cfg.PortRangeEnd),
		Validation:   executor.NewValidationReporter(cfg.ValidationStatusURL, zlog),
	}
	// Containers are told the same derived heartbeat URL, so the tracker
	// client must exist whenever a URL can be derived at all.
	hbURL := cfg.HeartbeatURL
	if hbURL == "" {
		hbURL = executor.DeriveHeartbeatBaseURL(cfg.CallbackURL)
	}
	if hbURL != "" {
		deps.Heartbeat = executor.NewHTTPHeartbeatTracker(hbURL)
	}

	// Any registry entry that fails to resolve is fatal: a half-loaded
	// registry is worse than a crash.
	registry, err := executor.LoadRegistry(cfg, deps, executor.DefaultFactories())
	if err != nil {
		zlog.Fatal("Failed to load executor registry", zap.Error(err))
	}

	svc := service.NewExecutionService(registry, zlog)

	nc, err := nats.Connect(cfg.NatsURL)
	if err != nil {
		zlog.Fatal("Failed to connect to NATS",
			zap.String("url", cfg.NatsURL),
			zap.Error(err))
	}
	defer nc.Close()

	nc.Subscribe("executor.submit.request", func(msg *nats.Msg) {
		natshandler.HandleSubmitRequest(msg, nc, svc)
	})
	nc.Subscribe("executor.cancel.request", func(msg *nats.Msg) {
		natshandler.HandleCancelRequest(msg, nc, svc)
	})
	nc.Subscribe("executor.status.request", func(msg *nats.Msg) {
		natshandler.HandleStatusRequest(msg, nc, svc)
	})
	nc.Subscribe("executor.count.request", func(msg *nats.Msg) {
		natshandler.HandleCountRequest(msg, nc, svc)
	})

	zlog.Info("Executor manager started",
		zap.String("nats", cfg.NatsURL),
		zap.Any("kinds", registry.Kinds()))

	select {}
}
