//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package sysinfo

import "golang.org/x/sys/unix"

// kernelRelease returns the uname(2) release field, e.g. "6.8.0-45-generic".
func kernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
