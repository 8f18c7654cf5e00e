package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irricore/entities"
)

func pendingSchedule() *entities.WateringSchedule {
	return &entities.WateringSchedule{
		ID:                7,
		LocationID:        2,
		Date:              time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC),
		RecommendedAmount: 40,
		Status:            entities.StatusPending,
		Notes:             "north plot",
	}
}

func f64(v float64) *float64 { return &v }

func TestComplete(t *testing.T) {
	t.Run("pending to completed with actual amount", func(t *testing.T) {
		s := pendingSchedule()
		err := Complete(s, Completion{ActualAmount: f64(35), Notes: "ran 20 min"})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCompleted, s.Status)
		require.NotNil(t, s.Execution.ActualAmount)
		assert.InDelta(t, 35, *s.Execution.ActualAmount, 0.0001)
		assert.Equal(t, entities.ExecutedManual, s.Execution.ExecutedBy)
		assert.Equal(t, "ran 20 min", s.Execution.Notes)
		assert.NotNil(t, s.Execution.EndTime)
		// creation-time note is untouched
		assert.Equal(t, "north plot", s.Notes)
	})

	t.Run("actual amount may be omitted", func(t *testing.T) {
		s := pendingSchedule()
		require.NoError(t, Complete(s, Completion{}))
		assert.Equal(t, entities.StatusCompleted, s.Status)
		assert.Nil(t, s.Execution.ActualAmount)
	})

	t.Run("negative actual amount rejected, schedule unchanged", func(t *testing.T) {
		s := pendingSchedule()
		err := Complete(s, Completion{ActualAmount: f64(-5)})
		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, entities.StatusPending, s.Status)
		assert.Zero(t, s.Execution)
	})

	t.Run("completed schedule cannot be skipped", func(t *testing.T) {
		s := pendingSchedule()
		require.NoError(t, Complete(s, Completion{ActualAmount: f64(35)}))
		before := *s
		err := Skip(s, entities.SkipReason{Kind: entities.SkipKindCanonical, Value: entities.SkipRecentRainfall})
		var conflict *entities.StateConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, entities.StatusCompleted, conflict.From)
		assert.Equal(t, before, *s)
	})
}

func TestSkip(t *testing.T) {
	t.Run("canonical reason", func(t *testing.T) {
		s := pendingSchedule()
		err := Skip(s, entities.SkipReason{Kind: entities.SkipKindCanonical, Value: entities.SkipMoistureAdequate})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusSkipped, s.Status)
		assert.Equal(t, entities.SkipMoistureAdequate, s.Execution.Notes)
		assert.Equal(t, entities.ExecutedManual, s.Execution.ExecutedBy)
	})

	t.Run("custom reason records its text", func(t *testing.T) {
		s := pendingSchedule()
		err := Skip(s, entities.SkipReason{Kind: entities.SkipKindCustom, Text: "pump scheduled for maintenance"})
		require.NoError(t, err)
		assert.Equal(t, "pump scheduled for maintenance", s.Execution.Notes)
	})

	t.Run("empty reason rejected, schedule unchanged", func(t *testing.T) {
		s := pendingSchedule()
		err := Skip(s, entities.SkipReason{})
		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, entities.StatusPending, s.Status)
	})

	t.Run("terminal skip cannot transition again", func(t *testing.T) {
		s := pendingSchedule()
		require.NoError(t, Skip(s, entities.SkipReason{Kind: entities.SkipKindCanonical, Value: entities.SkipEquipmentDown}))
		var conflict *entities.StateConflictError
		require.ErrorAs(t, Complete(s, Completion{ActualAmount: f64(10)}), &conflict)
		assert.Equal(t, entities.StatusSkipped, s.Status)
	})
}

func TestParseSkipReason(t *testing.T) {
	t.Run("canonical", func(t *testing.T) {
		r, err := entities.ParseSkipReason(entities.SkipRecentRainfall, "")
		require.NoError(t, err)
		assert.Equal(t, entities.SkipKindCanonical, r.Kind)
		assert.Equal(t, entities.SkipRecentRainfall, r.Note())
	})
	t.Run("other reason requires text", func(t *testing.T) {
		_, err := entities.ParseSkipReason(entities.SkipOtherReason, "  ")
		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
	})
	t.Run("other reason with text", func(t *testing.T) {
		r, err := entities.ParseSkipReason(entities.SkipOtherReason, "neighbor flooded the field")
		require.NoError(t, err)
		assert.Equal(t, entities.SkipKindCustom, r.Kind)
		assert.Equal(t, "neighbor flooded the field", r.Note())
	})
	t.Run("unknown reason rejected", func(t *testing.T) {
		_, err := entities.ParseSkipReason("felt like it", "")
		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
