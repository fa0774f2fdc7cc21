//go:build windows

package player

import (
	"os/exec"
	"strconv"
	"syscall"
)

const createNoWindow = 0x08000000

// sysProcAttr keeps the playback process from flashing a console window.
// mpv ships as a console binary on Windows, started bare it would pop a
// terminal over the interface.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: createNoWindow}
}

// killProcess tears down the playback process together with anything it
// spawned. taskkill /T follows the child tree, a plain Kill on the parent
// would leak mpv's stream helpers.
func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	kill := exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(cmd.Process.Pid))
	if err := kill.Run(); err != nil {
		return cmd.Process.Kill()
	}

	return nil
}
