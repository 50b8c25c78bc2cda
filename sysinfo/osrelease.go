package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// readOSRelease parses the first readable os-release file. The format is a
// list of shell-style KEY="value" assignments.
func readOSRelease(paths []string) (map[string]string, error) {
	var errs []error
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fields, err := godotenv.Parse(f)
		_ = f.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("parse %s: %w", path, err))
			continue
		}
		return fields, nil
	}
	if len(errs) == 0 {
		return nil, errors.New("no os-release paths")
	}
	return nil, errors.Join(errs...)
}

// prettyName picks the display name from os-release fields, preferring
// PRETTY_NAME and falling back to NAME plus VERSION.
func prettyName(fields map[string]string) string {
	if name := strings.TrimSpace(fields["PRETTY_NAME"]); name != "" {
		return name
	}
	return strings.TrimSpace(fields["NAME"] + " " + fields["VERSION"])
}
