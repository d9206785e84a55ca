package campaign

import (
	"strings"
	"time"

	apperrors "cargas/internal/errors"
)

// TimestampLayout is the wire format for generated management timestamps
const TimestampLayout = "2006-01-02 15:04:05"

var clockLayouts = []string{"15:04:05", "15:04"}

// ParseClock parses a time-of-day string in HH:MM or HH:MM:SS form
func ParseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, apperrors.InvalidTimeFormat()
}

// GenerateSchedule produces n timestamps within [start, end] on the given
// day, formatted with TimestampLayout. With a positive intervalSeconds the
// step is fixed and the window must fit all n rows (the start instant counts
// as a slot); with intervalSeconds <= 0 the step auto-adjusts so the n
// points span the window as evenly as whole seconds allow. Every generated
// instant is clamped to the window's right edge, so the result is
// monotonically non-decreasing and never leaves the range. Time strings are
// validated even when n is zero.
func GenerateSchedule(n int, day time.Time, startClock, endClock string, intervalSeconds int) ([]string, error) {
	startOfs, err := ParseClock(startClock)
	if err != nil {
		return nil, err
	}
	endOfs, err := ParseClock(endClock)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	start := dayStart.Add(startOfs)
	end := dayStart.Add(endOfs)
	if !end.After(start) {
		return nil, apperrors.InvalidRange()
	}
	rangeSeconds := int(end.Sub(start) / time.Second)

	if n <= 0 {
		return []string{}, nil
	}

	var step int
	if intervalSeconds > 0 {
		capacity := rangeSeconds/intervalSeconds + 1 // the start instant is a slot
		if n > capacity {
			return nil, apperrors.CapacityExceeded(startClock, endClock, n, intervalSeconds, capacity)
		}
		step = intervalSeconds
	} else if n == 1 {
		step = 1
	} else {
		step = rangeSeconds / (n - 1)
		if step < 1 {
			step = 1
		}
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i*step) * time.Second)
		if ts.After(end) {
			ts = end
		}
		out[i] = ts.Format(TimestampLayout)
	}
	return out, nil
}
