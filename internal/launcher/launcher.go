package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/xhd2015/xgo/support/cmd"

	"github.com/schulstick/portal/internal/process"
	"github.com/schulstick/portal/log"
	"github.com/schulstick/portal/models"
)

// Command builds the argv for a lesson's companion program.
// The optional path argument is only included when it exists on disk.
func Command(info *models.ProgramLaunchInfo) []string {
	args := []string{info.BinName}
	if info.Path != "" {
		if _, err := os.Stat(info.Path); err == nil {
			args = append(args, info.Path)
		}
	}
	args = append(args, info.Args...)
	return args
}

// AlreadyRunning reports whether the program is already running, in which
// case launching again is skipped.
func AlreadyRunning(info *models.ProgramLaunchInfo) bool {
	running, err := process.FindByName(info.BinName)
	if err != nil {
		log.Errorf(context.Background(), "failed to check running program %s: %v", info.BinName, err)
		return false
	}
	return running
}

// Launch starts the program fully detached so it outlives the portal.
// Callers are expected to have confirmed the launch with the user.
func Launch(info *models.ProgramLaunchInfo) (int, error) {
	if info == nil || info.BinName == "" {
		return 0, fmt.Errorf("no program to launch")
	}
	if AlreadyRunning(info) {
		log.Infof(context.Background(), "program %s is already running", info.BinName)
		return 0, nil
	}

	argv := Command(info)
	binPath, err := exec.LookPath(argv[0])
	if err != nil {
		return 0, fmt.Errorf("program not found: %s", argv[0])
	}

	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return 0, err
	}
	defer devnull.Close()

	execCmd := exec.Command(binPath, argv[1:]...)
	execCmd.Stdin = devnull
	execCmd.Stdout = devnull
	execCmd.Stderr = devnull
	// new session so closing the portal does not kill the program
	execCmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := execCmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to launch %s: %w", info.BinName, err)
	}
	pid := execCmd.Process.Pid
	log.Infof(context.Background(), "launched program %s pid=%d", info.BinName, pid)

	// detach, do not wait
	if err := execCmd.Process.Release(); err != nil {
		return pid, err
	}
	return pid, nil
}

// OpenExternal opens a URL in the user's default browser.
func OpenExternal(url string) error {
	if err := cmd.Run("xdg-open", url); err != nil {
		return fmt.Errorf("failed to open external link: %w", err)
	}
	return nil
}
