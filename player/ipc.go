package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// ipcRequest is the envelope mpv expects on its JSON IPC socket.
type ipcRequest struct {
	Command []interface{} `json:"command"`
}

// ipcReply is one line mpv writes back. Command replies carry an error
// field, asynchronous event broadcasts carry an event field instead.
type ipcReply struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
	Event string      `json:"event"`
}

const (
	ipcAttempts     = 3
	ipcRetryDelay   = 100 * time.Millisecond
	ipcReadDeadline = time.Second
)

// sendCommand issues one command against the player socket, serialized
// across callers. The socket can lag the process start by a moment, so
// connection failures are retried.
func (m *MPV) sendCommand(command []interface{}) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < ipcAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(ipcRetryDelay)
		}

		result, err := exchange(m.socketPath, command)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc command failed after %d attempts: %w", ipcAttempts, lastErr)
}

// exchange performs a single request/reply round trip. The protocol is
// newline-delimited JSON in both directions.
func exchange(socketPath string, command []interface{}) (interface{}, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	payload, err := json.Marshal(ipcRequest{Command: command})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(ipcReadDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	// mpv broadcasts events to every connected client, so the command
	// reply is not necessarily the first line that arrives.
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var reply ipcReply
		if err := json.Unmarshal(scanner.Bytes(), &reply); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}

		if reply.Event != "" {
			continue
		}

		if reply.Error != "" && reply.Error != "success" {
			return nil, fmt.Errorf("mpv error: %s", reply.Error)
		}
		return reply.Data, nil
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return nil, fmt.Errorf("connection closed before a reply")
}
