//go:build linux

package executor

import (
	"golang.org/x/sys/unix"
)

// kernelMajorVersion reads the running kernel's major version. Kernels older
// than 4.x lack syscalls that modern JS/Node runtimes expect, so launches on
// those hosts relax the default seccomp profile.
func kernelMajorVersion() int {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return 0
	}
	major := 0
	for _, b := range uts.Release {
		if b < '0' || b > '9' {
			break
		}
		major = major*10 + int(b-'0')
	}
	return major
}
