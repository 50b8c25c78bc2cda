package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// ruleGlyph draws the underline below user@host.
const ruleGlyph = "━"

// osReleasePaths are tried in order, as documented in os-release(5).
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// sources are the raw OS lookups behind Host. Tests replace them.
type sources struct {
	username   func() (string, error)
	hostname   func() (string, error)
	osRelease  func() (map[string]string, error)
	platform   func() (string, string, string, error)
	kernel     func() (string, error)
	getenv     func(string) string
	uptime     func() (uint64, error)
	virtualMem func() (*mem.VirtualMemoryStat, error)
}

func defaultSources() sources {
	return sources{
		username:   currentUser,
		hostname:   os.Hostname,
		osRelease:  func() (map[string]string, error) { return readOSRelease(osReleasePaths) },
		platform:   host.PlatformInformation,
		kernel:     kernelRelease,
		getenv:     os.Getenv,
		uptime:     host.Uptime,
		virtualMem: mem.VirtualMemory,
	}
}

// Host reads facts from the machine the process runs on.
type Host struct {
	palette Palette
	src     sources
}

var _ Provider = (*Host)(nil)

// NewHost returns a Provider backed by the local operating system.
func NewHost(p Palette) *Host {
	return &Host{palette: p, src: defaultSources()}
}

// UserAndHost returns the colored "user@host" header and an underline rule
// of the same visible width. In festive mode every other rule cell is an
// ornament.
func (h *Host) UserAndHost(festive bool) (string, string, error) {
	name, err := h.src.username()
	if err != nil {
		return "", "", unavailable("user", err)
	}
	if name == "" {
		return "", "", unavailable("user", nil)
	}
	hostname, err := h.src.hostname()
	if err != nil {
		return "", "", unavailable("host", err)
	}
	if hostname == "" {
		return "", "", unavailable("host", nil)
	}

	p := h.palette
	header := fmt.Sprintf("%s%s%s%s%s@%s%s%s%s",
		p.Green, p.Bold, name, p.Reset,
		p.Bold, p.Green, p.Bold, hostname, p.Reset)

	width := VisibleWidth(header)
	var rule strings.Builder
	rule.WriteString(p.Green)
	for i := 0; i < width; i++ {
		if festive && i%2 == 1 {
			rule.WriteString(Ornament)
		} else {
			rule.WriteString(ruleGlyph)
		}
	}
	rule.WriteString(p.Reset)

	return header, rule.String(), nil
}

// Distro returns the distribution's pretty name.
func (h *Host) Distro() (string, error) {
	if fields, err := h.src.osRelease(); err == nil {
		if name := prettyName(fields); name != "" {
			return factLine(h.palette, "os", name), nil
		}
	}

	platform, _, version, err := h.src.platform()
	if err != nil {
		return "", unavailable("distro", err)
	}
	name := strings.TrimSpace(platform + " " + version)
	if name == "" {
		return "", unavailable("distro", nil)
	}
	return factLine(h.palette, "os", name), nil
}

// Kernel returns the kernel release string.
func (h *Host) Kernel() (string, error) {
	release, err := h.src.kernel()
	if err != nil {
		return "", unavailable("kernel", err)
	}
	release = strings.TrimSpace(release)
	if release == "" {
		return "", unavailable("kernel", nil)
	}
	return factLine(h.palette, "kernel", release), nil
}

// Shell returns the name of the user's shell.
func (h *Host) Shell() (string, error) {
	shell := detectShell(h.src.getenv)
	if shell == "" {
		return "", unavailable("shell", nil)
	}
	return factLine(h.palette, "shell", shell), nil
}

// Uptime returns the time since boot.
func (h *Host) Uptime() (string, error) {
	secs, err := h.src.uptime()
	if err != nil {
		return "", unavailable("uptime", err)
	}
	return factLine(h.palette, "uptime", FormatUptime(time.Duration(secs)*time.Second)), nil
}

// Memory returns used and total physical memory.
func (h *Host) Memory() (string, error) {
	vm, err := h.src.virtualMem()
	if err != nil {
		return "", unavailable("memory", err)
	}
	if vm == nil || vm.Total == 0 {
		return "", unavailable("memory", nil)
	}
	used := vm.Total - min(vm.Available, vm.Total)
	return factLine(h.palette, "memory", FormatMemory(used, vm.Total)), nil
}

// currentUser prefers the account database and falls back to the
// environment for sandboxes without one.
func currentUser() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Windows reports DOMAIN\name.
		name := u.Username
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}
		return name, nil
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", errors.New("cannot determine current user")
}

// detectShell returns the base name of the login shell, or the Windows
// command interpreter when no POSIX shell is set.
func detectShell(getenv func(string) string) string {
	if shell := getenv("SHELL"); shell != "" {
		return baseName(shell)
	}
	if getenv("PSModulePath") != "" && getenv("PROMPT") == "" {
		return "powershell"
	}
	if comspec := getenv("COMSPEC"); comspec != "" {
		return strings.TrimSuffix(strings.ToLower(baseName(comspec)), ".exe")
	}
	return ""
}

// baseName handles both separators so a Windows COMSPEC is parsed the same
// on every platform.
func baseName(p string) string {
	return path.Base(strings.ReplaceAll(p, `\`, "/"))
}
