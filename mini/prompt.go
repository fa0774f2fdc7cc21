package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/icon"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/util"
)

// bind is a named menu action. Binds are compared by identity, never by name.
type bind struct {
	name string
}

func (b *bind) String() string {
	return b.name
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

// Menu actions shared across states. quit is appended to every menu.
var (
	quit   = &bind{"quit"}
	next   = &bind{"next"}
	prev   = &bind{"previous"}
	replay = &bind{"replay"}
	pause  = &bind{"pause"}
	resume = &bind{"resume"}
	back   = &bind{"back"}
	search = &bind{"new search"}
)

// title prints a section banner.
func title(s string) {
	fmt.Println(style.Title(s))
}

// fail prints a non-fatal error line.
func fail(s string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(s))
}

// progress prints an erasable status line and returns its eraser.
func progress(s string) func() {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), s))
}

// input holds a line read from the user.
type input struct {
	value string
}

// getInput prompts until the validator accepts the line.
func getInput(validate func(string) bool) (*input, error) {
	var value string
	err := survey.AskOne(&survey.Input{Message: ">"}, &value, survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		if !validate(s) {
			return fmt.Errorf("invalid input")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return &input{value: value}, nil
}

// menu renders items and action binds as a single select prompt. The chosen
// item comes back with a nil bind; a chosen action comes back as its bind.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var picked T

	binds = append(binds, quit)
	options := make([]string, 0, len(items)+len(binds))
	for _, item := range items {
		options = append(options, truncate.StringWithTail(item.String(), uint(truncateAt), "…"))
	}
	for _, b := range binds {
		options = append(options, b.String())
	}

	var answer survey.OptionAnswer
	err := survey.AskOne(&survey.Select{
		Message:  ">",
		Options:  options,
		PageSize: util.Min(len(options), 15),
	}, &answer)
	if err != nil {
		return nil, picked, err
	}

	if answer.Index < len(items) {
		picked = items[answer.Index]
		return nil, picked, nil
	}

	return binds[answer.Index-len(items)], picked, nil
}
