package history

import "errors"

// ErrNoData is returned by Summarize when no readings are stored.
var ErrNoData = errors.New("no readings recorded yet")

// Metric holds the spread of one measured quantity.
type Metric struct {
	Min float64
	Max float64
	Avg float64
}

// Summary aggregates the stored readings per metric.
type Summary struct {
	Count       int
	Temperature Metric // Celsius
	Humidity    Metric // percent
	AQI         Metric
}

type acc struct {
	min, max, sum float64
}

func newAcc(v float64) acc {
	return acc{min: v, max: v, sum: v}
}

func (a *acc) observe(v float64) {
	if v < a.min {
		a.min = v
	}
	if v > a.max {
		a.max = v
	}
	a.sum += v
}

func (a acc) metric(count int) Metric {
	return Metric{Min: a.min, Max: a.max, Avg: a.sum / float64(count)}
}

// Summarize computes count, minimum, maximum, and mean for every metric
// across the stored readings. It fails with ErrNoData when empty.
func (h *History) Summarize() (Summary, error) {
	rs := h.Readings()
	if len(rs) == 0 {
		return Summary{}, ErrNoData
	}

	temp := newAcc(rs[0].Celsius)
	hum := newAcc(rs[0].Humidity)
	aqi := newAcc(float64(rs[0].AQI))

	for _, r := range rs[1:] {
		temp.observe(r.Celsius)
		hum.observe(r.Humidity)
		aqi.observe(float64(r.AQI))
	}

	return Summary{
		Count:       len(rs),
		Temperature: temp.metric(len(rs)),
		Humidity:    hum.metric(len(rs)),
		AQI:         aqi.metric(len(rs)),
	}, nil
}
