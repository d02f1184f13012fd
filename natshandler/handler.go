package natshandler

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"

	"execengine/executor"
	"execengine/model"
	"execengine/service"
)

// CallbackSubject is where status transitions for the task store are
// published.
const CallbackSubject = "task.status.report"

// NewCallback returns a Callback publishing status reports to the task store
// subject. Publish failures are returned to the engine, which logs and
// discards them.
func NewCallback(nc *nats.Conn) executor.Callback {
	return func(report model.CallbackReport) error {
		data, err := json.Marshal(report)
		if err != nil {
			return err
		}
		return nc.Publish(CallbackSubject, data)
	}
}

// HandleSubmitRequest runs one submission. Submissions block on launch and
// health checks, so the work runs off the subscription goroutine and the
// reply is published when it finishes.
func HandleSubmitRequest(msg *nats.Msg, nc *nats.Conn, svc *service.ExecutionService) {
	var req model.ExecutionRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		log.Printf("Failed to parse execution request: %v", err)
		return
	}

	go func() {
		res := svc.Submit(context.Background(), &req, NewCallback(nc))
		resData, _ := json.Marshal(res)
		nc.Publish(msg.Reply, resData)
	}()
}

func HandleCancelRequest(msg *nats.Msg, nc *nats.Conn, svc *service.ExecutionService) {
	var req model.CancelRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		log.Printf("Failed to parse cancel request: %v", err)
		return
	}

	res := svc.Cancel(context.Background(), req)
	resData, _ := json.Marshal(res)
	nc.Publish(msg.Reply, resData)
}

func HandleStatusRequest(msg *nats.Msg, nc *nats.Conn, svc *service.ExecutionService) {
	var req model.StatusRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		log.Printf("Failed to parse status request: %v", err)
		return
	}

	res := svc.Status(context.Background(), req)
	resData, _ := json.Marshal(res)
	nc.Publish(msg.Reply, resData)
}

func HandleCountRequest(msg *nats.Msg, nc *nats.Conn, svc *service.ExecutionService) {
	var req model.CountRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		log.Printf("Failed to parse count request: %v", err)
		return
	}

	res := svc.Count(context.Background(), req)
	resData, _ := json.Marshal(res)
	nc.Publish(msg.Reply, resData)
}
