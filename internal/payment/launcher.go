package payment

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens a URL for the user.
type Launcher interface {
	Launch(ctx context.Context, rawURL string) error
}

// BrowserLauncher opens URLs with the platform's default browser, or
// with Command when one is configured (split on whitespace, URL
// appended as the final argument).
type BrowserLauncher struct {
	Command string
}

func (b BrowserLauncher) Launch(ctx context.Context, rawURL string) error {
	name, args := b.opener()
	cmd := exec.CommandContext(ctx, name, append(args, rawURL)...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// The browser outlives us; don't hold the process handle.
	return cmd.Process.Release()
}

func (b BrowserLauncher) opener() (string, []string) {
	// A blank override falls through to the platform opener.
	if parts := strings.Fields(b.Command); len(parts) > 0 {
		return parts[0], parts[1:]
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
