//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// sysProcAttr detaches the playback process into its own group, so a
// Ctrl+C aimed at the terminal surface does not take the music with it.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// killProcess tears down the playback process together with anything it
// spawned. mpv forks helpers for some stream types, a plain Kill on the
// parent would leak them.
func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	return cmd.Process.Kill()
}
