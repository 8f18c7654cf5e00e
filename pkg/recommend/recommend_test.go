package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irricore/entities"
)

func sampleAt(pct float64) entities.SoilMoistureSample {
	return entities.SoilMoistureSample{Moisture10CM: pct, Moisture20CM: pct, Moisture30CM: pct}
}

func TestEstimate_Tiers(t *testing.T) {
	cases := []struct {
		name     string
		avg      float64
		amount   float64
		category Category
	}{
		{"dry soil is High", 0, 75, CategoryHigh},
		{"just under High cutoff", 19.99, 75, CategoryHigh},
		{"boundary 20 falls to Moderate", 20, 40, CategoryModerate},
		{"mid Moderate", 27, 40, CategoryModerate},
		{"just under Moderate cutoff", 34.99, 40, CategoryModerate},
		{"boundary 35 falls to Low", 35, 20, CategoryLow},
		{"just under Low cutoff", 49.99, 20, CategoryLow},
		{"boundary 50 falls to None", 50, 0, CategoryNone},
		{"saturated soil is None", 100, 0, CategoryNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Estimate(sampleAt(tc.avg))
			require.NoError(t, err)
			assert.Equal(t, tc.category, got.Category)
			assert.InDelta(t, tc.amount, got.Amount, 0.0001)
		})
	}
}

func TestEstimate_DepthAveraging(t *testing.T) {
	t.Run("dry field sample", func(t *testing.T) {
		got, err := Estimate(entities.SoilMoistureSample{Moisture10CM: 15, Moisture20CM: 18, Moisture30CM: 12})
		require.NoError(t, err)
		assert.Equal(t, CategoryHigh, got.Category)
		assert.InDelta(t, 75, got.Amount, 0.0001)
	})
	t.Run("uniform forty percent", func(t *testing.T) {
		got, err := Estimate(entities.SoilMoistureSample{Moisture10CM: 40, Moisture20CM: 40, Moisture30CM: 40})
		require.NoError(t, err)
		assert.Equal(t, CategoryLow, got.Category)
		assert.InDelta(t, 20, got.Amount, 0.0001)
	})
}

func TestEstimate_MalformedInput(t *testing.T) {
	cases := []struct {
		name   string
		sample entities.SoilMoistureSample
	}{
		{"NaN depth", entities.SoilMoistureSample{Moisture10CM: math.NaN(), Moisture20CM: 30, Moisture30CM: 30}},
		{"infinite depth", entities.SoilMoistureSample{Moisture10CM: 30, Moisture20CM: math.Inf(1), Moisture30CM: 30}},
		{"negative percentage", sampleAt(-1)},
		{"over one hundred", entities.SoilMoistureSample{Moisture10CM: 30, Moisture20CM: 30, Moisture30CM: 101}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Estimate(tc.sample)
			var invalid *entities.InvalidInputError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestEstimate_ForwardCompatOptions(t *testing.T) {
	// Temperature and rainfall are accepted but do not change the rule yet.
	got, err := Estimate(sampleAt(40), WithTemperature(34.5), WithRainfall(0))
	require.NoError(t, err)
	assert.Equal(t, CategoryLow, got.Category)
	assert.InDelta(t, 20, got.Amount, 0.0001)
}
