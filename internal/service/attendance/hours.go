package attendance

import (
	"fmt"
	"math"
	"time"
)

const clockLayout = "15:04"

// ComputeWorkedHours returns the wall-clock difference between two HH:MM
// times in hours, rounded to two decimals. Only the time of day matters;
// both values are parsed onto the same placeholder date. A check-out earlier
// than the check-in rolls over to the next day (overnight shift); identical
// times yield zero.
func ComputeWorkedHours(checkIn, checkOut string) (float64, error) {
	in, err := time.Parse(clockLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in time %q: %w", checkIn, err)
	}
	out, err := time.Parse(clockLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out time %q: %w", checkOut, err)
	}

	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}

	hours := out.Sub(in).Hours()
	return math.Round(hours*100) / 100, nil
}
