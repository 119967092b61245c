package vision

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/xhd2015/xgo/support/cmd"
)

type captureTool struct {
	name string
	args func(outFile string) []string
}

// capture tools in preference order, first available wins
var captureTools = []captureTool{
	{"gnome-screenshot", func(f string) []string { return []string{"-f", f} }},
	{"spectacle", func(f string) []string { return []string{"-b", "-n", "-o", f} }},
	{"scrot", func(f string) []string { return []string{f} }},
	{"import", func(f string) []string { return []string{"-window", "root", f} }},
}

// CaptureScreen takes a full-screen screenshot with whichever tool is
// installed and returns the PNG bytes.
func CaptureScreen() ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "portal-screenshot")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)
	outFile := filepath.Join(tmpDir, "screen.png")

	var lastErr error
	for _, tool := range captureTools {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		if err := cmd.Run(tool.name, tool.args(outFile)...); err != nil {
			lastErr = err
			continue
		}
		data, err := os.ReadFile(outFile)
		if err != nil {
			lastErr = err
			continue
		}
		return data, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("screenshot failed: %w", lastErr)
	}
	return nil, fmt.Errorf("no screenshot tool found (tried gnome-screenshot, spectacle, scrot, import)")
}
