// Package browser opens URLs in the user's default browser.
package browser

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedPlatform is returned when no opener is known for the OS.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// OSOpenCmd allows mocking the open command.
var OSOpenCmd = func(url string) *exec.Cmd {
	return commandFor(runtime.GOOS, url)
}

func commandFor(goos, url string) *exec.Cmd {
	var cmd string
	var args []string
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = "xdg-open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		cmd = "open"
		args = []string{url}
	default:
		return nil
	}
	return exec.Command(cmd, args...) //nolint:gosec
}

// Open starts the platform opener for url without waiting for it.
func Open(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("empty url")
	}
	cmd := OSOpenCmd(url)
	if cmd == nil {
		return ErrUnsupportedPlatform
	}
	return cmd.Start()
}
