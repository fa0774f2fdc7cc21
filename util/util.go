// Package util provides small cross-surface helpers with no domain of their own.
package util

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"

	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]`)
	repeatedUnderscores = regexp.MustCompile(`__+`)
	filenameEdges       = regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
)

// SanitizeFilename folds a track title into a name every supported
// filesystem accepts. Unsafe characters become underscores, underscore
// runs collapse, separator edges are trimmed.
func SanitizeFilename(title string) string {
	name := unsafeFilenameChars.ReplaceAllString(title, "_")
	name = repeatedUnderscores.ReplaceAllString(name, "_")
	return filenameEdges.ReplaceAllString(name, "")
}

// Quantify renders a count with the grammatically matching label.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize upper-cases the first byte of a string.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalSize reports the character dimensions of the attached terminal.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen wipes the terminal buffer between prompt rounds.
func ClearScreen() {
	run := func(name string, args ...string) {
		cmd := exec.Command(name, args...)
		cmd.Stdout = os.Stdout
		_ = cmd.Run()
	}

	switch runtime.GOOS {
	case constant.Linux, constant.Darwin:
		run("tput", "clear")
	case constant.Windows:
		run("cmd", "/c", "cls")
	}
}

// PrintErasable prints a transient status line and returns the closure
// that blanks it again.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore runs a cleanup function and discards its error, for defers on
// response bodies and similar best-effort teardowns.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the largest of its arguments, the zero value for none.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the smallest of its arguments, the zero value for none.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}

// Delete removes a file or a whole directory through the virtualized
// filesystem.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
