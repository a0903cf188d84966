package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/particle-field/internal/field"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// statusLine is the text of the stats overlay.
func statusLine(s field.Stats, fps float64, up time.Duration, ix field.LinkIndex) string {
	return fmt.Sprintf("particles: %d  links: %d  index: %s  fps: %.0f  up: %s",
		s.Particles, s.Links, ix, fps, formatDuration(up))
}
