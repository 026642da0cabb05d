// Package sensor provides simulated weather readings covering
// temperature, relative humidity, and air quality index with its
// severity classification.
package sensor

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// TimeLayout is the on-disk timestamp format: ISO-8601 local time with
// microsecond precision.
const TimeLayout = "2006-01-02T15:04:05.000000"

// timeLayoutSeconds accepts entries written without a fractional part.
const timeLayoutSeconds = "2006-01-02T15:04:05"

// Timestamp is a local capture time that marshals as an ISO-8601 string.
type Timestamp time.Time

// MarshalJSON renders the timestamp in TimeLayout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(TimeLayout) + `"`), nil
}

// UnmarshalJSON parses TimeLayout, falling back to whole seconds for
// entries written without a fractional part.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	parsed, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		parsed, err = time.ParseInLocation(timeLayoutSeconds, s, time.Local)
		if err != nil {
			return fmt.Errorf("timestamp: parse %q: %w", s, err)
		}
	}
	*t = Timestamp(parsed)
	return nil
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time { return time.Time(t) }

// Reading is a single simulated weather observation. The JSON tags match
// the on-disk history format.
type Reading struct {
	Timestamp  Timestamp `json:"timestamp"`
	Celsius    float64   `json:"temperature_celsius"`
	Fahrenheit float64   `json:"temperature_fahrenheit"`
	Humidity   float64   `json:"humidity_percent"` // relative humidity
	AQI        int       `json:"air_quality_index"`
	Status     Status    `json:"air_quality_status"`
}

// CelsiusToFahrenheit converts a Celsius temperature, rounded to two
// decimal places.
func CelsiusToFahrenheit(c float64) float64 {
	return round2(c*9.0/5.0 + 32.0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
