// Package open hands URLs and files to the operating system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/shadowheroku/mu/constant"
)

// Start launches the default handler for input and returns without
// waiting for it. Track links opened out of the interactive surfaces go
// through here.
func Start(input string) error {
	cmd, err := command(input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// command builds the per-platform opener invocation.
func command(input string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	case constant.Android:
		return exec.Command("termux-open", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
