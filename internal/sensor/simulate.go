package sensor

import (
	"math/rand"
	"time"
)

// Simulation bounds. Temperature swings around an indoor baseline; a
// real deployment would read DHT22/MQ-135 class hardware instead.
const (
	TempBaseline = 22.0
	TempSwing    = 10.0
	HumidityMin  = 30.0
	HumidityMax  = 80.0
	AQIMin       = 0
	AQIMax       = 200
)

// Simulator produces readings with random values inside the simulation
// bounds. Each reading is an independent draw.
type Simulator struct {
	rand *rand.Rand
}

// NewSimulator creates a simulator seeded from the wall clock.
func NewSimulator() *Simulator {
	return NewSimulatorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewSimulatorWithSource creates a simulator with a caller-provided
// source, for deterministic tests.
func NewSimulatorWithSource(src rand.Source) *Simulator {
	return &Simulator{rand: rand.New(src)}
}

// Take produces one reading stamped with the given capture time. The
// time is truncated to microseconds so a persisted reading parses back
// to the same instant.
func (s *Simulator) Take(now time.Time) Reading {
	celsius := round2(TempBaseline + (s.rand.Float64()-0.5)*2*TempSwing)
	humidity := round2(HumidityMin + s.rand.Float64()*(HumidityMax-HumidityMin))
	aqi := AQIMin + s.rand.Intn(AQIMax-AQIMin+1)

	return Reading{
		Timestamp:  Timestamp(now.Truncate(time.Microsecond)),
		Celsius:    celsius,
		Fahrenheit: CelsiusToFahrenheit(celsius),
		Humidity:   humidity,
		AQI:        aqi,
		Status:     ClassifyAQI(aqi),
	}
}
