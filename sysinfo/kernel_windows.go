//go:build windows

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// kernelRelease builds "NT <major>.<minor>.<build>" from the CurrentVersion
// registry key.
func kernelRelease() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer func() { _ = k.Close() }()

	build, _, err := k.GetStringValue("CurrentBuild")
	if err != nil {
		return "", err
	}

	// Windows 10 and later expose the version as DWORDs. Older releases
	// only have the "6.x" string.
	major, _, merr := k.GetIntegerValue("CurrentMajorVersionNumber")
	minor, _, nerr := k.GetIntegerValue("CurrentMinorVersionNumber")
	if merr == nil && nerr == nil {
		return fmt.Sprintf("NT %d.%d.%s", major, minor, build), nil
	}
	version, _, err := k.GetStringValue("CurrentVersion")
	if err != nil {
		return "NT " + build, nil
	}
	return fmt.Sprintf("NT %s.%s", version, build), nil
}
