package player

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/shadowheroku/mu/constant"
)

// IINA implements the Player interface for macOS native IINA playback.
// It acts as a stub for IPC functionality since IINA does not expose
// the same IPC socket interface as mpv.
type IINA struct {
	cmd    *exec.Cmd
	exited chan struct{}
	video  bool
}

func NewIINA(video bool) *IINA {
	return &IINA{
		exited: make(chan struct{}),
		video:  video,
	}
}

func (m *IINA) Play(rawURL string, title string) error {
	if runtime.GOOS != constant.Darwin {
		return fmt.Errorf("IINA is only supported on macOS")
	}

	safeURL, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{"-a", "IINA"}

	// IINA accepts mpv-specific arguments via the '--args' flag separator.
	args = append(args, "--args", fmt.Sprintf("--mpv-force-media-title=%s", sanitizeTitle(title)))

	// Audio playback opens the compact music window instead of the full player.
	if !m.video {
		args = append(args, "--music-mode")
	}

	args = append(args, safeURL)

	m.cmd = exec.Command("open", args...)

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("LaunchServices failed to invoke IINA: %w", err)
	}

	// Wait for process to detach/finish
	m.exited = make(chan struct{})
	go func(cmd *exec.Cmd, exited chan struct{}) {
		_ = cmd.Wait()
		close(exited)
	}(m.cmd, m.exited)

	return nil
}

func (m *IINA) Wait() <-chan struct{} {
	return m.exited
}

// Stub implementations for the rest of the interface
func (m *IINA) TogglePause() error             { return nil }
func (m *IINA) GetTimePos() (float64, error)   { return 0, fmt.Errorf("not supported on IINA") }
func (m *IINA) GetDuration() (float64, error)  { return 0, fmt.Errorf("not supported on IINA") }
func (m *IINA) GetPausedStatus() (bool, error) { return false, fmt.Errorf("not supported on IINA") }
func (m *IINA) IsRunning() bool {
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}
func (m *IINA) Close() error {
	if m.cmd != nil && m.cmd.Process != nil {
		_ = m.cmd.Process.Kill()
	}
	return nil
}
func (m *IINA) Socket() string                                          { return "iina-native" }
func (m *IINA) StartIPCTicker(callback func(timePos int, duration int)) {}
func (m *IINA) StopIPCTicker()                                          {}
