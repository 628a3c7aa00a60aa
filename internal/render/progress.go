package render

import (
	"fmt"
	"math"
	"strings"
)

const progressSlots = 10

// Progress returns 100*t/total rounded to two decimals.
func Progress(t, total int) float64 {
	if total <= 0 {
		return 100
	}
	return math.Round(10000*float64(t)/float64(total)) / 100
}

// ProgressBar draws p in [0, 100] as ten slots with a ">" marker after the
// filled ones, e.g. "[===>       ]" for 35.
func ProgressBar(p float64) string {
	filled := int(math.Floor(p / 10))
	if filled < 0 {
		filled = 0
	}
	if filled > progressSlots {
		filled = progressSlots
	}
	return "[" + strings.Repeat("=", filled) + ">" + strings.Repeat(" ", progressSlots-filled) + "]"
}

// ProgressLine is the carriage-returned status line printed per frame.
func ProgressLine(p float64) string {
	return fmt.Sprintf("\rProgress: %.2f %% %s", p, ProgressBar(p))
}
