package executor

import (
	"strings"
)

// startupRule classifies an immediate container exit from its log tail and
// exit code. Rules are evaluated in order; the first match wins. Kept as data
// so new signatures can be added without touching the health-check routine.
type startupRule struct {
	name    string
	match   func(logs string, exitCode int) bool
	message func(logs string, exitCode int) string
}

const logExcerptLimit = 500

var startupRules = []startupRule{
	{
		name: "binary_incompatible",
		match: func(logs string, _ int) bool {
			return strings.Contains(logs, "exec") && strings.Contains(logs, "no such file or directory")
		},
		message: func(_ string, _ int) string {
			return "launcher binary is incompatible with the base image, likely a musl vs glibc mismatch (e.g. an alpine base); use a glibc-based image"
		},
	},
	{
		name: "missing_library",
		match: func(logs string, _ int) bool {
			return strings.Contains(logs, "not found") &&
				(strings.Contains(logs, "libc") || strings.Contains(logs, "ld-linux"))
		},
		message: func(_ string, _ int) string {
			return "base image is missing a system library required by the launcher (libc/ld-linux not found)"
		},
	},
	{
		name: "permission_denied",
		match: func(logs string, _ int) bool {
			return strings.Contains(logs, "permission denied")
		},
		message: func(_ string, _ int) string {
			return "launcher entrypoint is not executable in the base image (permission denied)"
		},
	},
	{
		name: "command_not_found",
		match: func(_ string, exitCode int) bool {
			return exitCode == 127
		},
		message: func(_ string, _ int) string {
			return "launcher command not found in the base image (exit code 127)"
		},
	},
	{
		name: "not_executable",
		match: func(_ string, exitCode int) bool {
			return exitCode == 126
		},
		message: func(_ string, _ int) string {
			return "launcher is present but not executable (exit code 126)"
		},
	},
}

// ClassifyStartupFailure maps a dead container's log tail and exit code to a
// human-readable cause. Falls back to a generic message carrying a bounded
// log excerpt.
func ClassifyStartupFailure(logs string, exitCode int) string {
	lower := strings.ToLower(logs)
	for _, rule := range startupRules {
		if rule.match(lower, exitCode) {
			return rule.message(lower, exitCode)
		}
	}
	excerpt := strings.TrimSpace(logs)
	if len(excerpt) > logExcerptLimit {
		excerpt = excerpt[len(excerpt)-logExcerptLimit:]
	}
	if excerpt == "" {
		return "container exited immediately after start with no log output"
	}
	return "container exited immediately after start: " + excerpt
}

// classifyLaunchStage tells pulling-image failures apart from
// starting-container failures for validation-stage reporting.
func classifyLaunchStage(err error) string {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "no such image") || strings.Contains(msg, "pull") ||
		strings.Contains(msg, "manifest") || strings.Contains(msg, "not found") {
		return StagePullImage
	}
	return StageStartContainer
}
