package entities

import (
	"fmt"
	"math"
)

// SoilMoistureSample is one multi-depth telemetry reading. Each depth is a
// volumetric moisture percentage in [0,100]. Samples feed the recommendation
// engine; only the derived amount is stored on a schedule.
type SoilMoistureSample struct {
	Moisture10CM float64 `json:"moisture_10cm"`
	Moisture20CM float64 `json:"moisture_20cm"`
	Moisture30CM float64 `json:"moisture_30cm"`
}

func (s SoilMoistureSample) Average() float64 {
	return (s.Moisture10CM + s.Moisture20CM + s.Moisture30CM) / 3
}

func (s SoilMoistureSample) Validate() error {
	for _, m := range []struct {
		depth string
		pct   float64
	}{
		{"10cm", s.Moisture10CM},
		{"20cm", s.Moisture20CM},
		{"30cm", s.Moisture30CM},
	} {
		if math.IsNaN(m.pct) || math.IsInf(m.pct, 0) {
			return &InvalidInputError{Msg: fmt.Sprintf("moisture %s is not a number", m.depth)}
		}
		if m.pct < 0 || m.pct > 100 {
			return &InvalidInputError{Msg: fmt.Sprintf("moisture %s = %.2f out of range [0,100]", m.depth, m.pct)}
		}
	}
	return nil
}
