package youtube

import (
	"fmt"
	"strconv"
	"strings"
)

// durationScale holds the second multipliers for clock segments, rightmost first.
var durationScale = []int{1, 60, 3600, 86400}

// Seconds converts a clock-style duration string to whole seconds.
// Accepted shapes are S, M:S, H:M:S and D:H:M:S. The literal "None" (what the
// search index reports for live streams) and anything unparsable yield 0.
func Seconds(text string) int {
	text = strings.TrimSpace(text)
	if text == "" || text == "None" {
		return 0
	}

	parts := strings.Split(text, ":")
	if len(parts) > len(durationScale) {
		return 0
	}

	total := 0
	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1-i]))
		if err != nil || n < 0 {
			return 0
		}
		total += n * durationScale[i]
	}
	return total
}

// DurationText renders whole seconds in the clock style search results use.
// Zero (a live stream) renders empty.
func DurationText(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
