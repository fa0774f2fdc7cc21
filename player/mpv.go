package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/shadowheroku/mu/log"
)

const (
	socketProbeAttempts = 10
	socketProbeDelay    = 300 * time.Millisecond
	quitGracePeriod     = 3 * time.Second
)

// MPV drives mpv through its JSON-IPC protocol.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when the process is reaped
	tickerStop chan struct{}
	video      bool
	mu         sync.Mutex // serializes socket exchanges
}

// NewMPV returns an idle player. Playback starts on the first Play call.
// With video disabled the process runs headless and renders audio only.
func NewMPV(video bool) *MPV {
	return &MPV{
		exited: make(chan struct{}),
		video:  video,
	}
}

// Play hands a track to mpv. A running instance is reused over IPC, so
// consecutive tracks share one window and one socket; otherwise a fresh
// process is launched.
func (m *MPV) Play(rawURL string, title string) error {
	// Stream locations come back from upstream metadata, never trust them
	// to be well-formed or flag-free.
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	mediaTitle := sanitizeTitle(title)

	if m.IsRunning() {
		return m.switchTrack(target, mediaTitle)
	}

	return m.launch(target, mediaTitle)
}

// switchTrack replaces the current track in the running instance.
func (m *MPV) switchTrack(target, title string) error {
	log.Debugf("mpv already running, loading %s over IPC", target)

	if err := m.Set("force-media-title", title); err != nil {
		return fmt.Errorf("retitle: %w", err)
	}

	if _, err := m.sendCommand([]interface{}{"loadfile", target, "replace"}); err != nil {
		return fmt.Errorf("load media: %w", err)
	}

	return nil
}

// launch starts a fresh mpv process and blocks until its IPC socket accepts
// connections.
func (m *MPV) launch(target, title string) error {
	if m.socketPath == "" {
		name, err := randomSocketName()
		if err != nil {
			return err
		}
		m.socketPath = name
	}

	m.cmd = exec.Command("mpv", m.launchArgs(target, title)...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	m.exited = make(chan struct{})
	go func() {
		// Reap the process so it never lingers as a zombie.
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		if m.cmd.Process != nil {
			select {
			case <-m.exited:
			default:
				log.Warnf("killing mpv: socket never became ready")
				_ = m.cmd.Process.Kill()
			}
		}

		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return nil
}

// launchArgs builds the argument list. Only the socket, the title and the
// rendering mode are passed, the user's mpv.conf keeps full control over
// --vo, --profile and --hwdec.
func (m *MPV) launchArgs(target, title string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + m.socketPath,
		"--force-media-title=" + title,
		// Some mpv builds only respect --title.
		"--title=" + title,
	}

	if m.video {
		args = append(args, "--force-window=yes")
	} else {
		args = append(args, "--no-video")
	}

	return append(args, target)
}

// randomSocketName picks a fresh socket path under os.TempDir. macOS puts
// TMPDIR below /var/folders, not /tmp.
func randomSocketName() (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate socket name: %w", err)
	}

	return filepath.Join(os.TempDir(), fmt.Sprintf("mu-%x.sock", suffix)), nil
}

// Wait returns a channel that is closed once the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// Seek jumps to an absolute position in seconds.
func (m *MPV) Seek(seconds float64) error {
	_, err := m.sendCommand([]interface{}{"seek", seconds, "absolute"})
	return err
}

// SetChapters overwrites the chapter list, which mpv renders as timeline
// markers.
func (m *MPV) SetChapters(chapters []map[string]interface{}) error {
	_, err := m.sendCommand([]interface{}{"set_property", "chapter-list", chapters})
	return err
}

// StartIPCTicker polls position and duration once a second and feeds them
// to callback. Start and stop are driven by the interface loop, never
// concurrently.
func (m *MPV) StartIPCTicker(callback func(timePos int, duration int)) {
	if m.tickerStop != nil {
		return
	}

	m.tickerStop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-m.tickerStop:
				return
			case <-m.exited:
				return
			case <-ticker.C:
				if !m.IsRunning() {
					continue
				}

				pos, err := m.GetTimePos()
				if err != nil {
					continue
				}

				dur, err := m.GetDuration()
				if err != nil {
					// Live streams report no duration, keep polling with 0.
					dur = 0
				}

				callback(int(pos), int(dur))
			}
		}
	}()
}

// StopIPCTicker stops the polling goroutine if one is running.
func (m *MPV) StopIPCTicker() {
	if m.tickerStop != nil {
		close(m.tickerStop)
		m.tickerStop = nil
	}
}

// waitForSocket blocks until the IPC socket accepts connections or the
// process dies first.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketProbeAttempts; i++ {
		time.Sleep(socketProbeDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}

	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketProbeAttempts)
}

// GetTimePos returns the current playback position in seconds.
func (m *MPV) GetTimePos() (float64, error) {
	return m.floatProperty("time-pos")
}

// GetDuration returns the length of the current track in seconds.
func (m *MPV) GetDuration() (float64, error) {
	return m.floatProperty("duration")
}

// GetPausedStatus reports whether playback is suspended.
func (m *MPV) GetPausedStatus() (bool, error) {
	data, err := m.sendCommand([]interface{}{"get_property", "pause"})
	if err != nil {
		return false, err
	}

	paused, ok := data.(bool)
	if !ok {
		return false, fmt.Errorf("pause property: expected bool, got %T", data)
	}

	return paused, nil
}

// TogglePause flips the suspension state.
func (m *MPV) TogglePause() error {
	_, err := m.sendCommand([]interface{}{"cycle", "pause"})
	return err
}

// Set assigns an mpv property.
func (m *MPV) Set(property string, value interface{}) error {
	_, err := m.sendCommand([]interface{}{"set_property", property, value})
	return err
}

// IsRunning reports whether the player answers on its socket. False before
// the first launch and after the process exits.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]interface{}{"get_property", "pid"})
	return err == nil
}

// Close asks mpv to quit, escalating to a kill when it does not comply in
// time, and removes the socket file.
func (m *MPV) Close() error {
	m.StopIPCTicker()

	if m.socketPath == "" {
		return nil
	}

	_, _ = m.sendCommand([]interface{}{"quit"})

	select {
	case <-m.exited:
	case <-time.After(quitGracePeriod):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

// Socket returns the IPC socket path, empty before the first launch.
func (m *MPV) Socket() string {
	return m.socketPath
}

// floatProperty reads a numeric mpv property.
func (m *MPV) floatProperty(name string) (float64, error) {
	data, err := m.sendCommand([]interface{}{"get_property", name})
	if err != nil {
		return 0, err
	}

	if data == nil {
		return 0, fmt.Errorf("property %s: nil response", name)
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

// sanitizeMediaTarget vets a playback target. Remote locations must be http
// or https and must never look like a flag; anything else is treated as a
// local file path.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}

		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

// sanitizeTitle folds whitespace control characters out of a track title
// before it crosses the IPC boundary.
func sanitizeTitle(title string) string {
	replacer := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "")
	return strings.TrimSpace(replacer.Replace(title))
}
