//go:build !unix

package exec

import (
	"errors"
	"os"
	osexec "os/exec"
)

func startGroup(cmd *osexec.Cmd) {}

func killGroup(cmd *osexec.Cmd) error {
	err := cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
