// Package icon renders UI symbols in the user's preferred variant:
// emoji, nerd-font glyphs, plain ASCII, kaomoji or colored squares.
package icon

import (
	"github.com/shadowheroku/mu/key"
	"github.com/spf13/viper"
)

// Variant identifiers, selectable through the icons.variant key.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists every variant identifier, for flag completion.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a registered UI symbol.
type Icon int

// Registered symbol identifiers.
const (
	Progress Icon = iota
	Success
	Fail
	Audio
	Video
	Link
	Cookie
)

// Get renders a symbol in the configured variant. An unknown variant
// renders empty, there is no fallback.
func Get(i Icon) string {
	return icons[i][viper.GetString(key.IconsVariant)]
}
