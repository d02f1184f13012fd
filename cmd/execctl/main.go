package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/nats-io/nats.go"

	"execengine/config"
	"execengine/model"
)

// execctl is a small operator tool that talks to the running executor
// manager over NATS: count and list live executors, inspect one, or cancel a
// task.
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.LoadConfig()
	nc, err := nats.Connect(cfg.NatsURL)
	if err != nil {
		color.Red("Failed to connect to NATS at %s: %v", cfg.NatsURL, err)
		os.Exit(1)
	}
	defer nc.Close()

	switch os.Args[1] {
	case "count":
		var res model.CountResponse
		request(nc, "executor.count.request", model.CountRequest{}, &res)
		if res.Status != model.StatusSuccess {
			color.Red("count failed: %s", res.ErrorMsg)
			os.Exit(1)
		}
		color.Green("%d executors running", res.Running)
		for _, id := range res.TaskIDs {
			fmt.Printf("  task %d\n", id)
		}
	case "status":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		var res model.StatusResponse
		request(nc, "executor.status.request", model.StatusRequest{ExecutorName: os.Args[2]}, &res)
		if !res.Exists {
			color.Yellow("%s: not found", os.Args[2])
			return
		}
		line := fmt.Sprintf("%s: %s (exit %d)", os.Args[2], res.Status, res.ExitCode)
		if res.OOMKilled {
			color.Red("%s [OOM killed]", line)
		} else if res.Status == "running" {
			color.Green(line)
		} else {
			color.Yellow(line)
		}
	case "cancel":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		var taskID int64
		if _, err := fmt.Sscanf(os.Args[2], "%d", &taskID); err != nil {
			color.Red("invalid task id %q", os.Args[2])
			os.Exit(1)
		}
		var res model.CancelResponse
		request(nc, "executor.cancel.request", model.CancelRequest{TaskID: taskID}, &res)
		if res.Status != model.StatusSuccess {
			color.Red("cancel failed: %s", res.ErrorMsg)
			os.Exit(1)
		}
		color.Green("task %d cancelled", taskID)
	default:
		usage()
		os.Exit(1)
	}
}

func request(nc *nats.Conn, subject string, req any, res any) {
	data, _ := json.Marshal(req)
	msg, err := nc.Request(subject, data, 10*time.Second)
	if err != nil {
		color.Red("request failed: %v", err)
		os.Exit(1)
	}
	if err := json.Unmarshal(msg.Data, res); err != nil {
		color.Red("bad response: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: execctl <count | status <executor-name> | cancel <task-id>>")
}
