//go:build unix

package exec

import (
	"errors"
	osexec "os/exec"
	"syscall"
)

// startGroup puts the solver in a process group of its own, so that
// killGroup reaches the children of wrapper scripts too.
func startGroup(cmd *osexec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killGroup(cmd *osexec.Cmd) error {
	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if errors.Is(err, syscall.ESRCH) {
		return nil
	}
	return err
}
