package icon

// icons maps each symbol to its per-variant representations.
var icons = map[Icon]map[string]string{
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(－ω－)", squares: "🟧"},
	Success:  {emoji: "✅", nerd: "", plain: "OK", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "", plain: "X", kaomoji: "(╯°□°)╯", squares: "🟥"},
	Audio:    {emoji: "🎵", nerd: "", plain: "[audio]", kaomoji: "♪(´▽｀)", squares: "🟪"},
	Video:    {emoji: "🎬", nerd: "", plain: "[video]", kaomoji: "(⌐■_■)", squares: "🟦"},
	Link:     {emoji: "🔗", nerd: "", plain: "->", kaomoji: "(つ✧)つ", squares: "🟨"},
	Cookie:   {emoji: "🍪", nerd: "", plain: "[cookie]", kaomoji: "(｡◕‿◕)", squares: "🟫"},
}
