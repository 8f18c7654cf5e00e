package aggregate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"irricore/entities"
)

func f64(v float64) *float64 { return &v }

func mixedCollection() []*entities.WateringSchedule {
	day := time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC)
	return []*entities.WateringSchedule{
		{ID: 1, Date: day, Status: entities.StatusCompleted, Execution: entities.ExecutionDetails{ActualAmount: f64(30)}},
		{ID: 2, Date: day, Status: entities.StatusCompleted}, // no actual amount recorded
		{ID: 3, Date: day, Status: entities.StatusPending},
	}
}

func TestSum(t *testing.T) {
	st := Sum(mixedCollection())
	assert.Equal(t, 1, st.PendingCount)
	assert.Equal(t, 2, st.CompletedCount)
	assert.Equal(t, 0, st.SkippedCount)
	assert.InDelta(t, 30, st.TotalWaterUsed, 0.0001)
}

func TestSum_OrderIndependent(t *testing.T) {
	in := mixedCollection()
	in = append(in,
		&entities.WateringSchedule{ID: 4, Status: entities.StatusSkipped},
		&entities.WateringSchedule{ID: 5, Status: entities.StatusCompleted, Execution: entities.ExecutionDetails{ActualAmount: f64(12.5)}},
	)
	want := Sum(in)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		r.Shuffle(len(in), func(a, b int) { in[a], in[b] = in[b], in[a] })
		assert.Equal(t, want, Sum(in))
	}
}

func TestSum_Empty(t *testing.T) {
	assert.Zero(t, Sum(nil))
}
