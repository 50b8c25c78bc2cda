//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package sysinfo

import "github.com/shirou/gopsutil/v4/host"

func kernelRelease() (string, error) {
	return host.KernelVersion()
}
