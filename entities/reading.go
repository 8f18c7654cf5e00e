package entities

import "time"

// SoilMoistureReading is a persisted telemetry record for a location. The
// schedule itself never stores raw readings, only the derived amount.
type SoilMoistureReading struct {
	ReadingID    uint      `gorm:"primaryKey" json:"reading_id"`
	LocationID   uint      `gorm:"index" json:"location_id"`
	Date         time.Time `json:"date"`
	Moisture10CM float64   `json:"moisture_10cm"`
	Moisture20CM float64   `json:"moisture_20cm"`
	Moisture30CM float64   `json:"moisture_30cm"`
	TemperatureC *float64  `json:"temperature_c"`
	RainfallMM   *float64  `json:"rainfall_mm"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *SoilMoistureReading) Sample() SoilMoistureSample {
	return SoilMoistureSample{
		Moisture10CM: r.Moisture10CM,
		Moisture20CM: r.Moisture20CM,
		Moisture30CM: r.Moisture30CM,
	}
}
