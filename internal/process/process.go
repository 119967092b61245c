package process

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

func ProcessExists(pid int) (bool, error) {
	if pid <= 0 {
		return false, nil
	}

	_, findErr := os.FindProcess(pid)
	if findErr != nil {
		return false, nil
	}

	return isProcessAlive(pid)
}

func isProcessAlive(pid int) (bool, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find process: %v", err)
	}

	isRunning, err := p.IsRunning()
	if err != nil {
		return false, fmt.Errorf("failed to check if process is running: %v", err)
	}

	return isRunning, nil
}

// FindByName reports whether any running process matches the given
// executable name. Used instead of shelling out to pgrep.
func FindByName(name string) (bool, error) {
	if name == "" {
		return false, nil
	}
	procs, err := process.Processes()
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %v", err)
	}
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue
		}
		if pname == name || strings.TrimSuffix(pname, ".exe") == name {
			return true, nil
		}
	}
	return false, nil
}
