package executor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStartupFailure(t *testing.T) {
	tests := []struct {
		name     string
		logs     string
		exitCode int
		want     string
	}{
		{
			name:     "musl glibc mismatch",
			logs:     "exec /opt/runner/runner: no such file or directory",
			exitCode: 1,
			want:     "musl vs glibc",
		},
		{
			name:     "missing system library",
			logs:     "runner: error while loading shared libraries: libc.so.6: not found",
			exitCode: 1,
			want:     "missing a system library",
		},
		{
			name:     "ld-linux missing",
			logs:     "/lib64/ld-linux-x86-64.so.2: not found",
			exitCode: 1,
			want:     "missing a system library",
		},
		{
			name:     "permission denied",
			logs:     "sh: /opt/runner/runner: Permission denied",
			exitCode: 1,
			want:     "not executable",
		},
		{
			name:     "command not found",
			logs:     "sh: runner: not found",
			exitCode: 127,
			want:     "command not found",
		},
		{
			name:     "exit 126",
			logs:     "something unhelpful",
			exitCode: 126,
			want:     "not executable",
		},
		{
			name:     "generic with excerpt",
			logs:     "panic: unexpected crash",
			exitCode: 2,
			want:     "panic: unexpected crash",
		},
		{
			name:     "no logs at all",
			logs:     "",
			exitCode: 1,
			want:     "no log output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ClassifyStartupFailure(tt.logs, tt.exitCode)
			assert.Contains(t, msg, tt.want)
		})
	}
}

func TestClassifyStartupFailureBoundsExcerpt(t *testing.T) {
	logs := strings.Repeat("x", 5000)
	msg := ClassifyStartupFailure(logs, 3)
	assert.LessOrEqual(t, len(msg), logExcerptLimit+100)
}

func TestClassifyLaunchStage(t *testing.T) {
	assert.Equal(t, StagePullImage, classifyLaunchStage(errors.New("No such image: foo:latest")))
	assert.Equal(t, StagePullImage, classifyLaunchStage(errors.New("pull access denied for repo")))
	assert.Equal(t, StageStartContainer, classifyLaunchStage(errors.New("cannot start container: oom")))
}
