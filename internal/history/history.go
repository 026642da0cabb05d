// Package history provides the bounded reading log and aggregate
// statistics over temperature, humidity, and air quality.
package history

import (
	"github.com/luki/weathermon/internal/sensor"
)

// Cap is the number of readings the on-disk history retains. Once full,
// each new reading evicts the oldest.
const Cap = 100

// History is an ordered sequence of readings, oldest first, bounded to a
// fixed capacity.
type History struct {
	readings []sensor.Reading
	max      int
}

// New creates an empty history with the given capacity.
func New(capacity int) *History {
	return &History{
		readings: make([]sensor.Reading, 0, capacity),
		max:      capacity,
	}
}

// Push appends a reading, evicting the oldest once the capacity is
// reached.
func (h *History) Push(r sensor.Reading) {
	if len(h.readings) >= h.max {
		copy(h.readings, h.readings[1:])
		h.readings[len(h.readings)-1] = r
		return
	}
	h.readings = append(h.readings, r)
}

// Len returns the number of stored readings.
func (h *History) Len() int { return len(h.readings) }

// Readings returns the stored readings, oldest first. Callers must not
// modify the returned slice.
func (h *History) Readings() []sensor.Reading { return h.readings }

// Last returns the most recent reading, or false when empty.
func (h *History) Last() (sensor.Reading, bool) {
	if len(h.readings) == 0 {
		return sensor.Reading{}, false
	}
	return h.readings[len(h.readings)-1], true
}
