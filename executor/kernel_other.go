//go:build !linux

package executor

// Non-linux hosts never trigger the old-kernel seccomp relaxation.
func kernelMajorVersion() int {
	return 0
}
